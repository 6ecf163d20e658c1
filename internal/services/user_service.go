package services

import (
	"errors"
	"time"

	"user-api/internal/apperrors"
	"user-api/internal/config"
	"user-api/internal/models"
	"user-api/internal/repository"
	"user-api/internal/requests"
	"user-api/internal/utils"

	"gorm.io/gorm"
)

// UserService owns the user lifecycle invariants: uniqueness, credential
// handling, soft-delete visibility and login gating. Configuration is
// injected at construction so the service carries no ambient state.
type UserService struct {
	repo        *repository.UserRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
	bcryptCost  int
}

func NewUserService(repo *repository.UserRepository, cfg *config.Config) *UserService {
	expiry, err := time.ParseDuration(cfg.Auth.JWT.Expiry)
	if err != nil || expiry <= 0 {
		expiry = utils.DefaultTokenExpiry
	}

	cost := cfg.Auth.Bcrypt.Cost
	if cost <= 0 {
		cost = utils.DefaultBcryptCost
	}

	return &UserService{
		repo:        repo,
		jwtSecret:   []byte(cfg.Auth.JWT.Secret),
		tokenExpiry: expiry,
		bcryptCost:  cost,
	}
}

// Register creates a user after checking that email and username are not in
// use among live users. The stored password is hashed; the returned user
// carries no password.
func (s *UserService) Register(req *requests.CreateUserRequest) (*models.User, error) {
	exists, err := s.repo.EmailExists(req.Email, 0)
	if err != nil {
		utils.LogError("register", err)
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	exists, err = s.repo.UsernameExists(req.Username, 0)
	if err != nil {
		utils.LogError("register", err)
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUsernameExists
	}

	hashed, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		utils.LogError("register", err)
		return nil, err
	}

	status := models.StatusActive
	if req.Status != "" {
		status = models.UserStatus(req.Status)
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hashed,
		Status:    status,
		Address:   req.Address,
		Country:   req.Country,
		City:      req.City,
		State:     req.State,
	}

	if err := s.repo.Create(user); err != nil {
		// The store's unique constraints are the last line of defense
		// against concurrent registration racing past the checks above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.resolveDuplicate(req.Email, req.Username, 0)
		}
		utils.LogError("register", err)
		return nil, err
	}

	return user.Sanitize(), nil
}

// GetByID fetches a live user by id.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			utils.LogError("get user", err)
		}
		return nil, err
	}
	return user.Sanitize(), nil
}

// List returns a page of live users matching the filter, passwords stripped.
func (s *UserService) List(filter repository.ListFilter) (*repository.ListResult, error) {
	result, err := s.repo.FindAll(filter)
	if err != nil {
		utils.LogError("list users", err)
		return nil, err
	}

	for i := range result.Users {
		result.Users[i].Password = ""
	}

	return result, nil
}

// Update applies a partial update. Email and username changes re-check
// uniqueness excluding the target itself; a supplied password is re-hashed.
func (s *UserService) Update(id uint, req *requests.UpdateUserRequest) (*models.User, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			utils.LogError("update user", err)
		}
		return nil, err
	}

	if req.Email != nil {
		exists, err := s.repo.EmailExists(*req.Email, id)
		if err != nil {
			utils.LogError("update user", err)
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrEmailExists
		}
	}

	if req.Username != nil {
		exists, err := s.repo.UsernameExists(*req.Username, id)
		if err != nil {
			utils.LogError("update user", err)
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrUsernameExists
		}
	}

	values := make(map[string]interface{})
	setIfPresent(values, "name", req.Name)
	setIfPresent(values, "email", req.Email)
	setIfPresent(values, "username", req.Username)
	setIfPresent(values, "first_name", req.FirstName)
	setIfPresent(values, "last_name", req.LastName)
	setIfPresent(values, "status", req.Status)
	setIfPresent(values, "address", req.Address)
	setIfPresent(values, "country", req.Country)
	setIfPresent(values, "city", req.City)
	setIfPresent(values, "state", req.State)

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			utils.LogError("update user", err)
			return nil, err
		}
		values["password"] = hashed
	}

	user, err := s.repo.Update(id, values)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			email, username := "", ""
			if req.Email != nil {
				email = *req.Email
			}
			if req.Username != nil {
				username = *req.Username
			}
			return nil, s.resolveDuplicate(email, username, id)
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			utils.LogError("update user", err)
		}
		return nil, err
	}

	return user.Sanitize(), nil
}

// Delete soft-deletes a live user. Deleting an unknown or already deleted
// user reports ErrUserNotFound.
func (s *UserService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			utils.LogError("delete user", err)
		}
		return err
	}

	if err := s.repo.SoftDelete(id); err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			utils.LogError("delete user", err)
		}
		return err
	}

	return nil
}

// Login authenticates by email and password and issues a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		utils.LogError("login", err)
		return nil, "", err
	}

	if !utils.CheckPassword(password, user.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if user.Status != models.StatusActive {
		return nil, "", apperrors.ErrAccountNotActive
	}

	token, err := utils.GenerateToken(utils.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		utils.LogError("login", err)
		return nil, "", err
	}

	return user.Sanitize(), token, nil
}

// resolveDuplicate maps a unique-constraint violation from the store to the
// colliding field's error kind.
func (s *UserService) resolveDuplicate(email, username string, excludeID uint) error {
	if email != "" {
		if exists, err := s.repo.EmailExists(email, excludeID); err == nil && exists {
			return apperrors.ErrEmailExists
		}
	}
	if username != "" {
		if exists, err := s.repo.UsernameExists(username, excludeID); err == nil && exists {
			return apperrors.ErrUsernameExists
		}
	}
	return apperrors.ErrEmailExists
}

func setIfPresent(values map[string]interface{}, column string, value *string) {
	if value != nil {
		values[column] = *value
	}
}
