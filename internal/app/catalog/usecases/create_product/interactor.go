package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/slug"
)

// Request contains the data needed to create a product.
// Tags and Sizes arrive already normalized to ordered lists.
type Request struct {
	Principal    *auth.Principal
	Name         string
	Description  string
	Price        float64
	SalePrice    *float64
	Inventory    int64
	PrimaryImage string
	ModelImage   string
	Images       []string
	Category     string
	ClothType    string
	Tags         []string
	Sizes        []string
	Featured     bool
}

// Result reports the created product and any best-effort warnings.
type Result struct {
	ProductID string
	Slug      string
	Warnings  []string
}

// Interactor handles the create product use case.
type Interactor struct {
	repo        contracts.ProductRepository
	committer   *committer.Committer
	invalidator contracts.Invalidator
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	committer *committer.Committer,
	invalidator contracts.Invalidator,
) *Interactor {
	return &Interactor{
		repo:        repo,
		committer:   committer,
		invalidator: invalidator,
	}
}

// Execute creates a new product.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Authorization before anything else
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return nil, err
	}

	// 2. Build and validate the aggregate
	product := &domain.Product{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		SalePrice:    req.SalePrice,
		Inventory:    req.Inventory,
		PrimaryImage: req.PrimaryImage,
		ModelImage:   req.ModelImage,
		Images:       req.Images,
		Category:     domain.NormalizeCategory(req.Category),
		ClothType:    req.ClothType,
		Tags:         req.Tags,
		Sizes:        req.Sizes,
		IsActive:     true,
		Featured:     req.Featured,
	}

	// Fall back to the two primary media references when no explicit
	// image list was submitted.
	if len(product.Images) == 0 {
		product.Images = []string{req.PrimaryImage, req.ModelImage}
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	// 3. Derive a unique slug from the display name
	uniqueSlug, err := slug.Unique(ctx, product.Name, func(ctx context.Context, candidate string) (bool, error) {
		return i.repo.SlugExists(ctx, candidate, "")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}
	product.Slug = uniqueSlug

	// 4. Persist atomically
	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(product))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// 5. Signal every view that could display the new product
	warnings := i.invalidator.Invalidate(ctx,
		"/",
		"/products",
		"/admin/products",
	)

	return &Result{
		ProductID: product.ID,
		Slug:      product.Slug,
		Warnings:  warnings,
	}, nil
}
