package update_user_role

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/app/account/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request names the target account and its new role.
type Request struct {
	Principal *auth.Principal
	UserID    string
	Role      string
}

// Result reports the persisted role.
type Result struct {
	UserID string
	Role   auth.Role
}

// Interactor handles the update user role use case.
type Interactor struct {
	repo      contracts.UserRepository
	committer *committer.Committer
}

// NewInteractor creates a new update user role interactor.
func NewInteractor(
	repo contracts.UserRepository,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute changes an account's role. Admins cannot change their own
// role; locking yourself out of the back office takes a second admin.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Authorization before anything else
	if err := auth.RequireAdmin(req.Principal); err != nil {
		return nil, err
	}
	if err := auth.RequireNotSelf(req.Principal, req.UserID); err != nil {
		return nil, err
	}

	// 2. Reject unknown roles before touching storage
	role := auth.Role(req.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	// 3. Load the target; distinct not-found error
	target, err := i.repo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. Persist atomically
	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateRoleMut(target.ID, role))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Result{
		UserID: target.ID,
		Role:   role,
	}, nil
}
