// Package repo implements the account context's Spanner persistence.
package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/app/account/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_user"
	"github.com/light-bringer/storefront-service/internal/models/m_wishlist"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// UserRepo implements the UserRepository interface for Spanner.
type UserRepo struct {
	client *spanner.Client
	model  *m_user.Model
}

// NewUserRepo creates a new UserRepo instance.
func NewUserRepo(client *spanner.Client) contracts.UserRepository {
	return &UserRepo{
		client: client,
		model:  m_user.NewModel(),
	}
}

// GetByID retrieves an account by primary key.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	row, err := r.client.Single().ReadRow(ctx, m_user.TableName, spanner.Key{userID}, userColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	return dataToDomain(&data), nil
}

// GetByEmail retrieves an account by its normalized address.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	stmt := query.From(m_user.TableName).
		Select(userColumns()...).
		Where(query.Eq(m_user.Email, domain.NormalizeEmail(email))).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}

	return dataToDomain(&data), nil
}

// EmailExists reports whether the normalized address is registered.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	stmt := query.From(m_user.TableName).
		Select(m_user.UserID).
		Where(query.Eq(m_user.Email, domain.NormalizeEmail(email))).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return true, nil
}

// InsertMut creates a mutation registering a new account.
func (r *UserRepo) InsertMut(user *domain.User) *spanner.Mutation {
	return r.model.InsertMut(domainToData(user))
}

// UpdateRoleMut creates a mutation changing an account's role.
func (r *UserRepo) UpdateRoleMut(userID string, role auth.Role) *spanner.Mutation {
	return r.model.UpdateMut(userID, map[string]interface{}{
		m_user.Role: string(role),
	})
}

// DeleteMut creates a mutation deleting an account.
func (r *UserRepo) DeleteMut(userID string) *spanner.Mutation {
	return r.model.DeleteMut(userID)
}

// WishlistRepo implements the WishlistRepository interface for Spanner.
type WishlistRepo struct {
	client *spanner.Client
	model  *m_wishlist.Model
}

// NewWishlistRepo creates a new WishlistRepo instance.
func NewWishlistRepo(client *spanner.Client) contracts.WishlistRepository {
	return &WishlistRepo{
		client: client,
		model:  m_wishlist.NewModel(),
	}
}

// AddMut creates a mutation adding a product to a wishlist.
func (r *WishlistRepo) AddMut(userID, productID string) *spanner.Mutation {
	return r.model.InsertMut(userID, productID)
}

// RemoveMut creates a mutation removing a product from a wishlist.
func (r *WishlistRepo) RemoveMut(userID, productID string) *spanner.Mutation {
	return r.model.DeleteMut(userID, productID)
}

// ProductExists reports whether the product is present and active.
func (r *WishlistRepo) ProductExists(ctx context.Context, productID string) (bool, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID).
		Where(query.Eq(m_product.ProductID, productID)).
		Where(query.Eq(m_product.IsActive, true)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check product: %w", err)
	}
	return true, nil
}

// userColumns is the full column set of the users table.
func userColumns() []string {
	return []string{
		m_user.UserID,
		m_user.Email,
		m_user.Name,
		m_user.Image,
		m_user.Role,
		m_user.PasswordHash,
		m_user.CreatedAt,
		m_user.UpdatedAt,
	}
}

// dataToDomain converts database Data to the domain aggregate.
func dataToDomain(data *m_user.Data) *domain.User {
	user := &domain.User{
		ID:        data.UserID,
		Name:      data.Name,
		Email:     data.Email,
		Role:      auth.Role(data.Role),
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.PasswordHash.Valid {
		user.PasswordHash = data.PasswordHash.StringVal
	}
	return user
}

// domainToData converts the domain aggregate to database Data.
func domainToData(user *domain.User) *m_user.Data {
	data := &m_user.Data{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Image:  user.Image,
		Role:   string(user.Role),
	}
	if user.PasswordHash != "" {
		data.PasswordHash = spanner.NullString{StringVal: user.PasswordHash, Valid: true}
	}
	return data
}
