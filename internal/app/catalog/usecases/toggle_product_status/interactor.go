package toggle_product_status

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request identifies the product whose active flag is flipped.
type Request struct {
	Principal *auth.Principal
	ProductID string
}

// Result reports the new flag value and any best-effort warnings.
type Result struct {
	IsActive bool
	Warnings []string
}

// Interactor handles the toggle product status use case.
type Interactor struct {
	repo        contracts.ProductRepository
	committer   *committer.Committer
	invalidator contracts.Invalidator
}

// NewInteractor creates a new toggle product status interactor.
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

// Execute flips the active flag of a product. Read-modify-write with
// last-write-wins semantics; concurrent toggles are tolerated.
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

	// 3. Negate and persist
	next := !existing.IsActive
	update := &contracts.ProductUpdate{IsActive: &next}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(existing.ID, update))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// 4. Signal the storefront and admin listings
	warnings := i.invalidator.Invalidate(ctx,
		"/",
		"/products",
		"/products/"+existing.Slug,
		"/admin/products",
	)

	return &Result{
		IsActive: next,
		Warnings: warnings,
	}, nil
}
