package list_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/pagination"
)

// Request contains filtering and pagination parameters for the public
// product listing. Zero values leave their axis unconstrained; the
// home page uses Featured, category pages use Category, search uses
// Search.
type Request struct {
	Category string
	Featured *bool
	Search   string
	Sort     string
	Skip     int64
	Limit    int64
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a paginated list of active products.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	filter := &contracts.ListFilter{
		Category: req.Category,
		Featured: req.Featured,
		Search:   req.Search,
		Sort:     domain.ParseSortKey(req.Sort),
		Window:   pagination.FromSkipLimit(req.Skip, req.Limit),
	}

	return q.readModel.ListProducts(ctx, filter)
}
