package m_wishlist

import "time"

// Data represents one wishlist membership row.
type Data struct {
	UserID    string    `spanner:"user_id"`
	ProductID string    `spanner:"product_id"`
	CreatedAt time.Time `spanner:"created_at"`
}
