package apperrors

import "errors"

var (
	// user errors
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already exists")
	ErrUsernameExists = errors.New("username already exists")

	// auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotActive   = errors.New("account is not active")

	// token errors
	ErrTokenMissing = errors.New("authentication token required")
	ErrTokenExpired = errors.New("authentication token expired")
	ErrTokenInvalid = errors.New("invalid authentication token")
)
