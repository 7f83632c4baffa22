package admin_list_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/pagination"
)

// Request contains paging and filtering for the admin product listing.
// Pagination is page-based here, unlike the public skip/limit listing.
type Request struct {
	Principal *auth.Principal
	Page      int64
	Limit     int64
	Search    string
	Category  string
	Status    string
}

// Query handles the admin product listing.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new admin list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of products of any status with relation
// counts. Requires the ADMIN role; checked before any data is read.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.AdminListResult, error) {
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return nil, err
	}

	filter := &contracts.AdminListFilter{
		Search:   req.Search,
		Category: req.Category,
		Status:   req.Status,
		Window:   pagination.FromPage(req.Page, req.Limit),
	}

	return q.readModel.ListAdminProducts(ctx, filter)
}
