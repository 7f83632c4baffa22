package list_orders

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/order/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/pagination"
)

// Request pages the caller's own order history.
type Request struct {
	Principal *auth.Principal
	Skip      int64
	Limit     int64
}

// Query handles the order history listing.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list orders query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of the caller's orders, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return nil, err
	}

	filter := &contracts.ListFilter{
		UserID: req.Principal.UserID,
		Window: pagination.FromSkipLimit(req.Skip, req.Limit),
	}

	return q.readModel.ListOrders(ctx, filter)
}
