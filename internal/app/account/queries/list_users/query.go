package list_users

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/pagination"
)

// Request contains paging, search and sorting for the admin user
// listing.
type Request struct {
	Principal *auth.Principal
	Page      int64
	PageSize  int64
	Search    string
	SortBy    string
	SortOrder string
}

// Query handles the admin user listing.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list users query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of accounts. Requires the ADMIN role;
// checked before any data is read.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return nil, err
	}

	filter := &contracts.ListFilter{
		Search:    req.Search,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Window:    pagination.FromPage(req.Page, req.PageSize),
	}

	return q.readModel.ListUsers(ctx, filter)
}
