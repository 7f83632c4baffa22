package delete_product

import (
	"context"
	"fmt"
	"log"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/images"
)

// Request identifies the product to delete.
type Request struct {
	Principal *auth.Principal
	ProductID string
}

// Result reports any best-effort warnings from the deletion.
type Result struct {
	Warnings []string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo        contracts.ProductRepository
	committer   *committer.Committer
	invalidator contracts.Invalidator
	imageStore  images.Store
}

// NewInteractor creates a new delete product interactor.
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

// Execute deletes a product. The record removal is committed first;
// image host cleanup runs afterwards and only produces warnings.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Authorization before anything else
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return nil, err
	}

	// 2. Load the record; distinct not-found error
	existing, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	// 3. Remove the record atomically
	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(existing.ID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// 4. Best-effort image host cleanup
	var warnings []string
	for _, url := range collectImages(existing.PrimaryImage, existing.ModelImage, existing.Images) {
		if err := i.imageStore.Delete(ctx, url); err != nil {
			warning := fmt.Sprintf("failed to delete image %s: %v", url, err)
			log.Printf("delete_product: %s", warning)
			warnings = append(warnings, warning)
		}
	}

	// 5. Signal every view that could have displayed the record
	warnings = append(warnings, i.invalidator.Invalidate(ctx,
		"/",
		"/products",
		"/products/"+existing.Slug,
		"/admin/products",
	)...)

	return &Result{Warnings: warnings}, nil
}

// collectImages deduplicates the media references of a record.
func collectImages(primary, model string, rest []string) []string {
	seen := make(map[string]struct{})
	var urls []string

	for _, url := range append([]string{primary, model}, rest...) {
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}

	return urls
}
