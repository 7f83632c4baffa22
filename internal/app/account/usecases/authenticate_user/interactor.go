package authenticate_user

import (
	"context"
	"errors"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/app/account/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

// Request contains the submitted login credentials.
type Request struct {
	Email    string
	Password string
}

// Result carries the session token and the authenticated identity.
type Result struct {
	Token     string
	Principal auth.Principal
}

// Interactor handles the login use case.
type Interactor struct {
	repo     contracts.UserRepository
	hasher   *auth.PasswordHasher
	sessions *auth.SessionManager
}

// NewInteractor creates a new authenticate user interactor.
func NewInteractor(
	repo contracts.UserRepository,
	hasher *auth.PasswordHasher,
	sessions *auth.SessionManager,
) *Interactor {
	return &Interactor{
		repo:     repo,
		hasher:   hasher,
		sessions: sessions,
	}
}

// Execute verifies the credentials and issues a session token. Unknown
// address and wrong password produce the same error so login failures
// leak nothing about registered accounts.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Resolve the account by its normalized address
	user, err := i.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Accounts without a password credential cannot log in this way
	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Verify against the stored hash
	if !i.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	// 4. Issue the session token
	principal := auth.Principal{UserID: user.ID, Role: user.Role}
	token, err := i.sessions.Issue(principal)
	if err != nil {
		return nil, err
	}

	return &Result{
		Token:     token,
		Principal: principal,
	}, nil
}
