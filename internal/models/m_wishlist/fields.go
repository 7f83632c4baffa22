package m_wishlist

// Field name constants for the wishlist_items table, the many-to-many
// relation between users and products.
const (
	TableName = "wishlist_items"

	UserID    = "user_id"
	ProductID = "product_id"
	CreatedAt = "created_at"
)
