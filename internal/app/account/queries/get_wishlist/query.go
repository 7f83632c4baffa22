package get_wishlist

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
)

// Request identifies the caller whose wishlist is listed.
type Request struct {
	Principal *auth.Principal
}

// Query handles the wishlist listing.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get wishlist query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute lists the caller's wishlisted products, most recently added
// first. Deactivated products are excluded.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.WishlistItem, error) {
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return nil, err
	}

	return q.readModel.GetWishlist(ctx, req.Principal.UserID)
}
