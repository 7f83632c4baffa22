package toggle_product_featured

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request identifies the product whose featured flag is flipped.
type Request struct {
	Principal *auth.Principal
	ProductID string
}

// Result reports the new flag value and any best-effort warnings.
type Result struct {
	Featured bool
	Warnings []string
}

// Interactor handles the toggle product featured use case.
type Interactor struct {
	repo        contracts.ProductRepository
	committer   *committer.Committer
	invalidator contracts.Invalidator
}

// NewInteractor creates a new toggle product featured interactor.
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

// Execute flips the featured flag of a product. Read-modify-write with
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
	next := !existing.Featured
	update := &contracts.ProductUpdate{Featured: &next}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(existing.ID, update))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	// 4. The featured strip lives on the home page
	warnings := i.invalidator.Invalidate(ctx,
		"/",
		"/admin/products",
	)

	return &Result{
		Featured: next,
		Warnings: warnings,
	}, nil
}
