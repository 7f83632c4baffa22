package delete_user

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request names the account to delete.
type Request struct {
	Principal *auth.Principal
	UserID    string
}

// Interactor handles the delete user use case.
type Interactor struct {
	repo      contracts.UserRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete user interactor.
func NewInteractor(
	repo contracts.UserRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute deletes an account. Admins cannot delete their own account
// through this operation.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Authorization before anything else
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return err
	}
	if err := auth.RequireNotSelf(req.Principal, req.UserID); err != nil {
		return err
	}

	// 2. Load the target; distinct not-found error
	target, err := i.repo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	// 3. Remove the record atomically
	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(target.ID))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
