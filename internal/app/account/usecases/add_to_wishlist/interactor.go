package add_to_wishlist

import (
	"context"
	"fmt"

	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request names the product the caller adds to their wishlist.
type Request struct {
	Principal *auth.Principal
	ProductID string
}

// Interactor handles the add to wishlist use case.
type Interactor struct {
	repo      contracts.WishlistRepository
	committer *committer.Committer
}

// NewInteractor creates a new add to wishlist interactor.
func NewInteractor(
	repo contracts.WishlistRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute adds an active product to the caller's wishlist. Repeated
// adds of the same product are idempotent.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Authorization before anything else
	if err := auth.RequireAuthenticated(req.Principal); err != nil {
		return err
	}

	// 2. Only existing, active products can be wishlisted
	exists, err := i.repo.ProductExists(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if !exists {
		return catalogdomain.ErrProductNotFound
	}

	// 3. Persist atomically
	plan := committer.NewPlan()
	plan.Add(i.repo.AddMut(req.Principal.UserID, req.ProductID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
