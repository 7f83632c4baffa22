package get_user

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
)

// Request identifies the account to fetch. An empty UserID means the
// caller's own account.
type Request struct {
	Principal *auth.Principal
	UserID    string
}

// Query handles the account profile query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get user query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a profile with addresses and recent orders.
// Callers may read their own profile; any other account requires the
// ADMIN role.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.Profile, error) {
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return nil, err
	}

	target := req.UserID
	if target == "" {
		target = req.Principal.UserID
	}

	if target != req.Principal.UserID {
		if err := auth.RequireAdmin(req.Principal); err != nil {
			return nil, err
		}
	}

	return q.readModel.GetProfile(ctx, target)
}
