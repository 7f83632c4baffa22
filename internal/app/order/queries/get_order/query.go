package get_order

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/order/contracts"
	"github.com/light-bringer/storefront-service/internal/app/order/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

// Request identifies the order to fetch.
type Request struct {
	Principal *auth.Principal
	OrderID   string
}

// Query handles the order detail query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get order query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves one order with its items. Owners see their own
// orders; any other order requires the ADMIN role. The ownership check
// answers not-found rather than forbidden so order IDs of other users
// cannot be probed.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.OrderDTO, error) {
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return nil, err
	}

	order, err := q.readModel.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != req.Principal.UserID && !req.Principal.IsAdmin() {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}
