package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// ProductUpdate carries the fields of an update operation. Nil means
// "no change" on that axis.
type ProductUpdate struct {
	Name         *string
	Slug         *string
	Description  *string
	Price        *float64
	SalePrice    *float64
	Inventory    *int64
	PrimaryImage *string
	ModelImage   *string
	Images       []string
	Category     *string
	ClothType    *string
	Tags         []string
	Sizes        []string
	IsActive     *bool
	Featured     *bool
}

// ProductRepository is the write-side product store. Mutation methods
// return Spanner mutations for the usecase's commit plan instead of
// applying them.
type ProductRepository interface {
	// GetByID loads a product or returns domain.ErrProductNotFound.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// SlugExists reports whether another product (excluding excludeID,
	// when non-empty) already owns the slug.
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)

	// InsertMut creates the mutation inserting a new product.
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates the mutation for the given field updates.
	// Returns nil when the update is empty.
	UpdateMut(productID string, update *ProductUpdate) *spanner.Mutation

	// DeleteMut creates the mutation deleting a product.
	DeleteMut(productID string) *spanner.Mutation
}

// Invalidator signals the view cache that pages displaying a mutated
// record are stale. Best-effort: implementations return warnings, not
// errors.
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string) []string
}
