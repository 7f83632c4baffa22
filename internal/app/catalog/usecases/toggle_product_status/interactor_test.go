package toggle_product_status

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
	return false, nil
}

func (f *fakeRepo) InsertMut(*domain.Product) *spanner.Mutation {
	return nil
}

// UpdateMut applies the flag to the stored product so consecutive
// toggles observe each other, and returns no mutation so the commit
// plan stays empty and never reaches Spanner.
func (f *fakeRepo) UpdateMut(_ string, update *contracts.ProductUpdate) *spanner.Mutation {
	f.lastUpdate = update
	if update.IsActive != nil {
		f.product.IsActive = *update.IsActive
	}
	return nil
}

func (f *fakeRepo) DeleteMut(string) *spanner.Mutation {
	return nil
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, ...string) []string { return nil }

func TestExecute_RequiresAdmin(t *testing.T) {
	repo := &fakeRepo{}
	interactor := NewInteractor(repo, nil, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleUser},
		ProductID: "p-1",
	})

	assert.ErrorIs(t, err, auth.ErrForbidden)
	assert.Zero(t, repo.getCalls, "guard must reject before any read")
}

func TestExecute_ProductNotFound(t *testing.T) {
	repo := &fakeRepo{}
	interactor := NewInteractor(repo, nil, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleAdmin},
		ProductID: "missing",
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestExecute_ToggleTwiceRestoresOriginal(t *testing.T) {
	repo := &fakeRepo{product: &domain.Product{ID: "p-1", Slug: "linen-shirt", IsActive: true}}
	interactor := NewInteractor(repo, nil, noopInvalidator{})
	admin := &auth.Principal{UserID: "u-1", Role: auth.RoleAdmin}

	first, err := interactor.Execute(context.Background(), &Request{
		Principal: admin,
		ProductID: "p-1",
	})
	require.NoError(t, err)
	assert.False(t, first.IsActive)
	assert.False(t, repo.product.IsActive)

	second, err := interactor.Execute(context.Background(), &Request{
		Principal: admin,
		ProductID: "p-1",
	})
	require.NoError(t, err)
	assert.True(t, second.IsActive)
	assert.True(t, repo.product.IsActive)
	assert.Equal(t, 2, repo.getCalls)
}
