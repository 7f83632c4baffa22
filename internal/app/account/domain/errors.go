package domain

import "errors"

var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an address that
	// already belongs to an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidEmail is returned when the address fails validation.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrEmptyName is returned when the display name is blank.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrWeakPassword is returned when the password is below the
	// minimum length.
	ErrWeakPassword = errors.New("password too short")
	// ErrInvalidCredentials is returned on a failed login. Deliberately
	// identical for unknown address and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRole is returned when a role change names an unknown role.
	ErrInvalidRole = errors.New("invalid role")
)
