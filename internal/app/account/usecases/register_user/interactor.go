package register_user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/app/account/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
)

// Request contains the raw registration input.
type Request struct {
	Name     string
	Email    string
	Password string
	Image    string
}

// Result identifies the registered account.
type Result struct {
	UserID string
}

// Interactor handles the register user use case.
type Interactor struct {
	repo      contracts.UserRepository
	hasher    *auth.PasswordHasher
	committer *committer.Committer
}

// NewInteractor creates a new register user interactor.
func NewInteractor(
	repo contracts.UserRepository,
	hasher *auth.PasswordHasher,
	committer *committer.Committer,
) *Interactor {
	return &Interactor{
		repo:      repo,
		hasher:    hasher,
		committer: committer,
	}
}

// Execute registers a new account with the USER role. The address must
// not already be registered; the unique index on email backstops the
// pre-check under concurrent registration.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Validate the raw input
	if err := domain.ValidateRegistration(req.Name, req.Email, req.Password); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(req.Email)

	// 2. Reject an already registered address with a distinct error
	taken, err := i.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	// 3. Hash the credential
	hash, err := i.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         auth.RoleUser,
		Image:        req.Image,
	}

	// 4. Persist atomically
	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(user))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Result{UserID: user.ID}, nil
}
