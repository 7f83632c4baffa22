// Package auth carries the caller identity through the request path
// and owns credential hashing and session tokens.
package auth

import "errors"

var (
	// ErrUnauthenticated is returned when no caller identity is present.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("insufficient role")
	// ErrSelfAction is returned when an admin targets their own account
	// through an administrative operation.
	ErrSelfAction = errors.New("cannot perform this action on your own account")
)

// Role is the access level of an account.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "USER"
	// RoleAdmin grants access to the back office.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// RequireAuthenticated fails closed when no principal is present.
func RequireAuthenticated(p *Principal) error {
	if p == nil || p.UserID == "" {
		return ErrUnauthenticated
	}
	return nil
}

// RequireAdmin fails closed unless the caller is an authenticated admin.
func RequireAdmin(p *Principal) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// RequireNotSelf rejects administrative operations an admin aims at
// their own account (role changes, deletion).
func RequireNotSelf(p *Principal, targetUserID string) error {
	if p != nil && p.UserID == targetUserID {
		return ErrSelfAction
	}
	return nil
}
