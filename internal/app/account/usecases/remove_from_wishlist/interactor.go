package remove_from_wishlist

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request names the product the caller removes from their wishlist.
type Request struct {
	Principal *auth.Principal
	ProductID string
}

// Interactor handles the remove from wishlist use case.
type Interactor struct {
	repo      contracts.WishlistRepository
	committer *committer.Committer
}

// NewInteractor creates a new remove from wishlist interactor.
func NewInteractor(
	repo contracts.WishlistRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute removes a product from the caller's wishlist. Removing an
// entry that is not present succeeds without effect.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Authorization before anything else
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return err
	}

	// 2. Persist atomically
	plan := committer.NewPlan()
	plan.Add(i.repo.RemoveMut(req.Principal.UserID, req.ProductID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
