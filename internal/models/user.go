package models

import "time"

type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusInactive  UserStatus = "inactive"
	StatusSuspended UserStatus = "suspended"
)

// User is the sole persisted entity. Uniqueness of email and username is
// enforced among live rows only, so the unique indexes are partial: a
// soft-deleted row does not block re-registration of its email or username.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Email     string     `gorm:"size:255;not null;uniqueIndex:udx_users_email,where:deleted_at IS NULL" json:"email"`
	Username  string     `gorm:"size:100;not null;uniqueIndex:udx_users_username,where:deleted_at IS NULL" json:"username"`
	FirstName string     `gorm:"size:100;not null" json:"first_name"`
	LastName  string     `gorm:"size:100;not null" json:"last_name"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Status    UserStatus `gorm:"size:20;default:active;index" json:"status"`
	Address   *string    `gorm:"type:text" json:"address,omitempty"`
	Country   *string    `gorm:"size:100" json:"country,omitempty"`
	City      *string    `gorm:"size:100" json:"city,omitempty"`
	State     *string    `gorm:"size:100" json:"state,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Sanitize clears the password hash before the user leaves the service layer.
func (u *User) Sanitize() *User {
	u.Password = ""
	return u
}
