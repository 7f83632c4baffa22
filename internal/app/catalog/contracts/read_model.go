package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/pagination"
)

// ProductCard is the flat projection used by public listing pages.
// It carries no relations.
type ProductCard struct {
	ProductID    string     `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	SalePrice    *float64   `json:"salePrice,omitempty"`
	Inventory    int64      `json:"inventory"`
	PrimaryImage string     `json:"primaryImage"`
	ModelImage   string     `json:"modelImage"`
	Images       []string   `json:"images"`
	Category     string     `json:"category"`
	ClothType    string     `json:"clothType"`
	Tags         []string   `json:"tags"`
	Sizes        []string   `json:"sizes"`
	IsActive     bool       `json:"isActive"`
	Featured     bool       `json:"featured"`
	TimesSold    int64      `json:"timesSold"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Reviewer is the identity projection of a review author: never more
// than id, name and image.
type Reviewer struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
}

// ReviewDTO is a review with its author projected.
type ReviewDTO struct {
	ReviewID  string    `json:"id"`
	Rating    int64     `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Reviewer  Reviewer  `json:"user"`
}

// ProductDetail is the public detail projection: flat fields plus
// reviews, newest first.
type ProductDetail struct {
	ProductCard
	Reviews []ReviewDTO `json:"reviews"`
}

// AdminProductRow is the admin listing projection: flat fields plus
// relation counts, no relation bodies.
type AdminProductRow struct {
	ProductCard
	OrderItemCount int64 `json:"orderItemCount"`
	ReviewCount    int64 `json:"reviewCount"`
}

// OrderRef is the parent order attached to an admin order-item row.
type OrderRef struct {
	OrderID   string    `json:"id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItemDTO is one sold unit of the product with its parent order.
type OrderItemDTO struct {
	OrderItemID string    `json:"id"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Size        string    `json:"size"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	Order       OrderRef  `json:"order"`
}

// AdminProductDetail is the admin detail projection: flat fields,
// reviews with reviewer identity, and the ten most recent order items.
type AdminProductDetail struct {
	ProductCard
	Reviews          []ReviewDTO    `json:"reviews"`
	RecentOrderItems []OrderItemDTO `json:"orderItems"`
}

// ListFilter defines filtering for public product listings. Zero
// values on optional axes impose no constraint.
type ListFilter struct {
	Category string
	Featured *bool
	Search   string
	Sort     domain.SortKey
	Window   pagination.Window
}

// ListResult is a public listing page.
type ListResult struct {
	Products   []*ProductCard
	TotalCount int64
	HasMore    bool
}

// StatusAll, StatusActive and StatusInactive are the admin status
// filter values; anything else behaves like StatusAll.
const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// AdminListFilter defines filtering for the admin product listing.
type AdminListFilter struct {
	Search   string
	Category string
	Status   string
	Window   pagination.Window
}

// AdminListResult is an admin listing page.
type AdminListResult struct {
	Products    []*AdminProductRow
	TotalCount  int64
	TotalPages  int64
	CurrentPage int64
}

// ReadModel defines the catalog query interface. Read models bypass
// the domain layer and return context-shaped projections directly.
type ReadModel interface {
	// ListProducts returns active products matching the filter.
	ListProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)

	// GetProductBySlug returns the public detail of an active product.
	GetProductBySlug(ctx context.Context, slug string) (*ProductDetail, error)

	// SimilarProducts returns active products sharing the category or a
	// tag with the given product, excluding it, most sold first.
	SimilarProducts(ctx context.Context, productID string, limit int64) ([]*ProductCard, error)

	// ListAdminProducts returns products for the back office, any status.
	ListAdminProducts(ctx context.Context, filter *AdminListFilter) (*AdminListResult, error)

	// GetAdminProduct returns the admin detail for any product.
	GetAdminProduct(ctx context.Context, productID string) (*AdminProductDetail, error)
}
