package admin_get_product

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
)

// Request identifies the product to fetch by ID.
type Request struct {
	Principal *auth.Principal
	ProductID string
}

// Query handles the admin product detail query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new admin get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the admin detail projection for any product.
// Requires the ADMIN role; checked before any data is read.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.AdminProductDetail, error) {
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return nil, err
	}

	return q.readModel.GetAdminProduct(ctx, req.ProductID)
}
