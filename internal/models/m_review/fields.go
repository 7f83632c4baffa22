package m_review

// Field name constants for the reviews table. Read-only here.
const (
	TableName = "reviews"

	ReviewID  = "review_id"
	ProductID = "product_id"
	UserID    = "user_id"
	Rating    = "rating"
	Content   = "content"
	CreatedAt = "created_at"
)
