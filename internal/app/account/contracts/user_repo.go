package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/account/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

// UserRepository is the write-side account store. Mutation methods
// return Spanner mutations for the usecase's commit plan instead of
// applying them.
type UserRepository interface {
	// GetByID loads an account or returns domain.ErrUserNotFound.
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// GetByEmail loads an account by its normalized address or returns
	// domain.ErrUserNotFound. The credential hash is populated.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// EmailExists reports whether an account already owns the
	// normalized address.
	EmailExists(ctx context.Context, email string) (bool, error)

	// InsertMut creates the mutation registering a new account.
	InsertMut(user *domain.User) *spanner.Mutation

	// UpdateRoleMut creates the mutation changing an account's role.
	UpdateRoleMut(userID string, role auth.Role) *spanner.Mutation

	// DeleteMut creates the mutation deleting an account.
	DeleteMut(userID string) *spanner.Mutation
}

// WishlistRepository is the write-side of the user/product wishlist
// relation.
type WishlistRepository interface {
	// AddMut creates the mutation adding a product to a wishlist.
	// Idempotent for repeated adds.
	AddMut(userID, productID string) *spanner.Mutation

	// RemoveMut creates the mutation removing a product from a
	// wishlist. Removing an absent entry is a no-op at commit time.
	RemoveMut(userID, productID string) *spanner.Mutation

	// ProductExists reports whether the product is present and active.
	ProductExists(ctx context.Context, productID string) (bool, error)
}
