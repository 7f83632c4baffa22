package m_wishlist

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for mutations on the wishlist_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation adding a product to a user's wishlist.
// InsertOrUpdate keeps the operation idempotent for repeated adds.
func (m *Model) InsertMut(userID, productID string) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{UserID, ProductID, CreatedAt},
		[]interface{}{userID, productID, spanner.CommitTimestamp},
	)
}

// DeleteMut creates a mutation removing a product from a user's wishlist.
func (m *Model) DeleteMut(userID, productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{userID, productID})
}
