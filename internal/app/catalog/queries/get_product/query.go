package get_product

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

// Request identifies the product to fetch by its public slug.
type Request struct {
	Slug string
}

// Query handles the public product detail query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves an active product's detail projection, including
// reviews with reviewer identity.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDetail, error) {
	return q.readModel.GetProductBySlug(ctx, req.Slug)
}
