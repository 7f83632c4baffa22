package update_product

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

type fakeRepo struct {
	product    *domain.Product
	getCalls   int
	slugCalls  int
	lastUpdate *contracts.ProductUpdate
}

func (f *fakeRepo) GetByID(_ context.Context, productID string) (*domain.Product, error) {
	f.getCalls++
	if f.product == nil || f.product.ID != productID {
		return nil, domain.ErrProductNotFound
	}
	return f.product, nil
}

func (f *fakeRepo) SlugExists(context.Context, string, string) (bool, error) {
	f.slugCalls++
	return false, nil
}

func (f *fakeRepo) InsertMut(*domain.Product) *spanner.Mutation { return nil }

// UpdateMut captures the update and returns no mutation, keeping the
// commit plan empty so Execute returns before touching Spanner.
func (f *fakeRepo) UpdateMut(_ string, update *contracts.ProductUpdate) *spanner.Mutation {
	f.lastUpdate = update
	return nil
}

func (f *fakeRepo) DeleteMut(string) *spanner.Mutation { return nil }

func TestExecute_RequiresAdmin(t *testing.T) {
	repo := &fakeRepo{}
	interactor := NewInteractor(repo, nil, nil, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleUser},
		ProductID: "p-1",
	})

	assert.ErrorIs(t, err, auth.ErrForbidden)
	assert.Zero(t, repo.getCalls, "guard must reject before any read")
}

func TestExecute_ProductNotFound(t *testing.T) {
	interactor := NewInteractor(&fakeRepo{}, nil, nil, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleAdmin},
		ProductID: "missing",
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestExecute_RejectsInvalidFields(t *testing.T) {
	repo := &fakeRepo{product: &domain.Product{ID: "p-1", Name: "Linen Shirt", Slug: "linen-shirt"}}
	interactor := NewInteractor(repo, nil, nil, nil)
	admin := &auth.Principal{UserID: "u-1", Role: auth.RoleAdmin}

	badPrice := -1.0
	_, err := interactor.Execute(context.Background(), &Request{
		Principal: admin,
		ProductID: "p-1",
		Price:     &badPrice,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	badInventory := int64(-5)
	_, err = interactor.Execute(context.Background(), &Request{
		Principal: admin,
		ProductID: "p-1",
		Inventory: &badInventory,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInventory)
}

func TestExecute_SlugKeptWhenNameUnchanged(t *testing.T) {
	repo := &fakeRepo{product: &domain.Product{
		ID:    "p-1",
		Name:  "Linen Shirt",
		Slug:  "linen-shirt",
		Price: 29.99,
	}}
	interactor := NewInteractor(repo, nil, nil, nil)

	sameName := "Linen Shirt"
	newPrice := 24.99
	result, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleAdmin},
		ProductID: "p-1",
		Name:      &sameName,
		Price:     &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "linen-shirt", result.Slug)
	require.NotNil(t, repo.lastUpdate)
	assert.Nil(t, repo.lastUpdate.Slug)
	assert.Zero(t, repo.slugCalls, "no collision check when the name is unchanged")
}

func TestExecute_SlugRecomputedWhenNameChanges(t *testing.T) {
	repo := &fakeRepo{product: &domain.Product{
		ID:   "p-1",
		Name: "Linen Shirt",
		Slug: "linen-shirt",
	}}
	interactor := NewInteractor(repo, nil, nil, nil)

	newName := "Linen Overshirt"
	result, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleAdmin},
		ProductID: "p-1",
		Name:      &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "linen-overshirt", result.Slug)
	require.NotNil(t, repo.lastUpdate)
	if assert.NotNil(t, repo.lastUpdate.Slug) {
		assert.Equal(t, "linen-overshirt", *repo.lastUpdate.Slug)
	}
	assert.Equal(t, 1, repo.slugCalls)
}
