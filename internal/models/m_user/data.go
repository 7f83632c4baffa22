package m_user

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the users table.
// PasswordHash is null for federated-login-only accounts.
type Data struct {
	UserID       string             `spanner:"user_id"`
	Email        string             `spanner:"email"`
	Name         string             `spanner:"name"`
	Image        string             `spanner:"image"`
	Role         string             `spanner:"role"`
	PasswordHash spanner.NullString `spanner:"password_hash"`
	CreatedAt    time.Time          `spanner:"created_at"`
	UpdatedAt    time.Time          `spanner:"updated_at"`
}
