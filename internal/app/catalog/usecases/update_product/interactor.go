package update_product

import (
	"context"
	"fmt"
	"log"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/images"
	"github.com/light-bringer/storefront-service/internal/pkg/slug"
)

// Request contains the fields to update. Nil pointers mean "no change".
// Tags, Sizes and Images replace the stored lists when non-nil.
type Request struct {
	Principal    *auth.Principal
	ProductID    string
	Name         *string
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

// Result reports the persisted slug and any best-effort warnings.
type Result struct {
	Slug     string
	Warnings []string
}

// Interactor handles the update product use case.
type Interactor struct {
	repo        contracts.ProductRepository
	committer   *committer.Committer
	invalidator contracts.Invalidator
	imageStore  images.Store
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	committer *committer.Committer,
	invalidator contracts.Invalidator,
	imageStore images.Store,
) *Interactor {
	return &Interactor{
		repo:        repo,
		committer:   committer,
		invalidator: invalidator,
		imageStore:  imageStore,
	}
}

// Execute updates a product. The slug is recomputed only when the
// display name actually changes; replaced images are deleted from the
// image host best-effort.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Authorization before anything else
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return nil, err
	}

	// 2. Load the current record; distinct not-found error
	existing, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	// 3. Validate the incoming fields
	if req.Name != nil && *req.Name == "" {
		return nil, domain.ErrEmptyName
	}
	if req.Price != nil && *req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if req.Inventory != nil && *req.Inventory < 0 {
		return nil, domain.ErrInvalidInventory
	}

	update := &contracts.ProductUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		SalePrice:    req.SalePrice,
		Inventory:    req.Inventory,
		PrimaryImage: req.PrimaryImage,
		ModelImage:   req.ModelImage,
		Images:       req.Images,
		Category:     req.Category,
		ClothType:    req.ClothType,
		Tags:         req.Tags,
		Sizes:        req.Sizes,
		IsActive:     req.IsActive,
		Featured:     req.Featured,
	}

	// 4. Recompute the slug only when the name changed
	persistedSlug := existing.Slug
	if req.Name != nil && *req.Name != existing.Name {
		newSlug, err := slug.Unique(ctx, *req.Name, func(ctx context.Context, candidate string) (bool, error) {
			return i.repo.SlugExists(ctx, candidate, existing.ID)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve slug: %w", err)
		}
		update.Slug = &newSlug
		persistedSlug = newSlug
	}

	// 5. Persist atomically
	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(existing.ID, update))

	if plan.IsEmpty() {
		return &Result{Slug: persistedSlug}, nil
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// 6. Best-effort cleanup of replaced images; never aborts the update
	warnings := i.deleteReplacedImages(ctx, existing, req)

	// 7. Signal every view that could display the record
	warnings = append(warnings, i.invalidator.Invalidate(ctx,
		"/",
		"/products",
		"/products/"+existing.Slug,
		"/products/"+persistedSlug,
		"/admin/products",
		"/admin/products/"+existing.ID,
	)...)

	return &Result{
		Slug:     persistedSlug,
		Warnings: warnings,
	}, nil
}

// deleteReplacedImages removes images the update orphaned. Failures
// are logged and reported as warnings.
func (i *Interactor) deleteReplacedImages(ctx context.Context, existing *domain.Product, req *Request) []string {
	var warnings []string

	replaced := func(old string, updated *string) bool {
		return updated != nil && old != "" && *updated != old
	}

	for _, old := range []string{
		pickReplaced(existing.PrimaryImage, req.PrimaryImage, replaced),
		pickReplaced(existing.ModelImage, req.ModelImage, replaced),
	} {
		if old == "" {
			continue
		}
		if err := i.imageStore.Delete(ctx, old); err != nil {
			warning := fmt.Sprintf("failed to delete replaced image %s: %v", old, err)
			log.Printf("update_product: %s", warning)
			warnings = append(warnings, warning)
		}
	}

	return warnings
}

func pickReplaced(old string, updated *string, replaced func(string, *string) bool) string {
	if replaced(old, updated) {
		return old
	}
	return ""
}
