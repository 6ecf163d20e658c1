package repository

import (
	"errors"
	"time"

	"user-api/internal/apperrors"
	"user-api/internal/models"

	"gorm.io/gorm"
)

const DefaultPageSize = 10

// ListFilter narrows and orders a user listing.
type ListFilter struct {
	Page      int
	Limit     int
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

// ListResult is one page of users plus the pre-pagination totals.
type ListResult struct {
	Users      []models.User
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// sortColumns whitelists the columns a caller may sort by; anything else
// falls back to created_at.
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"username":   "username",
	"first_name": "first_name",
	"last_name":  "last_name",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.live().Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.live().Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.live().Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindAll returns the page of live users matching the filter together with
// the total match count and total page count. A page past the end of the
// result yields an empty page, not an error.
func (r *UserRepository) FindAll(filter ListFilter) (*ListResult, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	query := func() *gorm.DB {
		q := r.live()
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		if filter.Search != "" {
			like := "%" + filter.Search + "%"
			q = q.Where(
				r.db.Where("name LIKE ?", like).
					Or("email LIKE ?", like).
					Or("username LIKE ?", like).
					Or("first_name LIKE ?", like).
					Or("last_name LIKE ?", like),
			)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	err := query().
		Order(orderClause(filter.SortBy, filter.SortOrder)).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Users:      users,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// Update applies the given column values to a live user and refreshes
// updated_at, also when no other column changes. The updated row is re-read
// and returned.
func (r *UserRepository) Update(id uint, values map[string]interface{}) (*models.User, error) {
	if values == nil {
		values = make(map[string]interface{})
	}
	values["updated_at"] = time.Now()

	result := r.live().Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return r.FindByID(id)
}

// SoftDelete marks a live user as deleted. Deleting an unknown or already
// deleted user reports ErrUserNotFound.
func (r *UserRepository) SoftDelete(id uint) error {
	now := time.Now()
	result := r.live().Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": now,
		"updated_at": now,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// EmailExists reports whether a live user other than excludeID holds the
// email. Pass excludeID 0 to check against all live users.
func (r *UserRepository) EmailExists(email string, excludeID uint) (bool, error) {
	return r.exists("email = ?", email, excludeID)
}

// UsernameExists reports whether a live user other than excludeID holds the
// username.
func (r *UserRepository) UsernameExists(username string, excludeID uint) (bool, error) {
	return r.exists("username = ?", username, excludeID)
}

func (r *UserRepository) exists(condition string, value string, excludeID uint) (bool, error) {
	q := r.live().Where(condition, value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// live scopes every read and write to rows that are not soft-deleted.
func (r *UserRepository) live() *gorm.DB {
	return r.db.Model(&models.User{}).Where("deleted_at IS NULL")
}

func orderClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if sortOrder == "asc" || sortOrder == "ASC" {
		direction = "ASC"
	}

	return column + " " + direction
}
