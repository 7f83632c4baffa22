// Package contracts defines the boundary interfaces and projections of
// the account context.
package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/pagination"
)

// ProfileRecentOrderLimit bounds the order history shown on a profile.
const ProfileRecentOrderLimit = 5

// UserRow is the listing projection of an account. The credential hash
// is deliberately absent.
type UserRow struct {
	UserID    string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddressDTO is the shipping address projection on a profile.
type AddressDTO struct {
	AddressID  string `json:"id"`
	Recipient  string `json:"recipient"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"isDefault"`
}

// OrderSummary is the compact order projection on a profile.
type OrderSummary struct {
	OrderID   string    `json:"id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	ItemCount int64     `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the account detail: identity, saved addresses and the
// most recent orders.
type Profile struct {
	UserRow
	Addresses    []AddressDTO   `json:"addresses"`
	RecentOrders []OrderSummary `json:"recentOrders"`
}

// WishlistItem is the card projection of a wishlisted product.
type WishlistItem struct {
	ProductID    string    `json:"productId"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	SalePrice    *float64  `json:"salePrice"`
	PrimaryImage string    `json:"primaryImage"`
	Inventory    int64     `json:"inventory"`
	AddedAt      time.Time `json:"addedAt"`
}

// Sort keys accepted by the admin user listing. Unknown keys fall back
// to SortByCreatedAt.
const (
	SortByCreatedAt = "createdAt"
	SortByName      = "name"
	SortByEmail     = "email"
	SortByRole      = "role"
)

// Sort directions accepted by the admin user listing. Unknown values
// fall back to each sort key's natural direction.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListFilter narrows and pages the admin user listing.
type ListFilter struct {
	Search    string
	SortBy    string
	SortOrder string
	Window    pagination.Window
}

// ListResult is one page of the admin user listing.
type ListResult struct {
	Users       []*UserRow `json:"items"`
	TotalCount  int64      `json:"totalCount"`
	TotalPages  int64      `json:"totalPages"`
	CurrentPage int64      `json:"currentPage"`
}

// ReadModel is the read-side of the account context.
type ReadModel interface {
	// GetProfile loads the detail projection of an account or returns
	// domain.ErrUserNotFound.
	GetProfile(ctx context.Context, userID string) (*Profile, error)

	// ListUsers retrieves a page of accounts for the back office.
	ListUsers(ctx context.Context, filter *ListFilter) (*ListResult, error)

	// GetWishlist lists a user's wishlisted products, most recently
	// added first. Products that have been deactivated are skipped.
	GetWishlist(ctx context.Context, userID string) ([]*WishlistItem, error)
}
