package m_user

// Field name constants for the users table.
const (
	TableName = "users"

	UserID       = "user_id"
	Email        = "email"
	Name         = "name"
	Image        = "image"
	Role         = "role"
	PasswordHash = "password_hash"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"
)
