package similar_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

// DefaultLimit is the number of similar products shown on a detail page.
const DefaultLimit = 4

// Request identifies the product to find matches for.
type Request struct {
	ProductID string
	Limit     int64
}

// Query handles the similar products query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new similar products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves active products sharing the category or a tag with
// the given product, excluding the product itself, best sellers first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductCard, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return q.readModel.SimilarProducts(ctx, req.ProductID, limit)
}
