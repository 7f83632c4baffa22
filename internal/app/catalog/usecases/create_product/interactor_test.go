package create_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

func TestExecute_RequiresAdmin(t *testing.T) {
	interactor := NewInteractor(nil, nil, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleUser},
		Name:      "Linen Shirt",
		Price:     49.99,
		Category:  "shirts",
	})

	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestExecute_RequiresAuthentication(t *testing.T) {
	interactor := NewInteractor(nil, nil, nil)

	_, err := interactor.Execute(context.Background(), &Request{
		Name:     "Linen Shirt",
		Price:    49.99,
		Category: "shirts",
	})

	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestExecute_RejectsInvalidProduct(t *testing.T) {
	interactor := NewInteractor(nil, nil, nil)
	admin := &auth.Principal{UserID: "u-1", Role: auth.RoleAdmin}

	tests := []struct {
		name    string
		request *Request
		wantErr error
	}{
		{
			name:    "empty name",
			request: &Request{Principal: admin, Name: "  ", Price: 10, Inventory: 1, Category: "shirts"},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "zero price",
			request: &Request{Principal: admin, Name: "Linen Shirt", Price: 0, Inventory: 1, Category: "shirts"},
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name:    "negative inventory",
			request: &Request{Principal: admin, Name: "Linen Shirt", Price: 10, Inventory: -1, Category: "shirts"},
			wantErr: domain.ErrInvalidInventory,
		},
		{
			name:    "missing category",
			request: &Request{Principal: admin, Name: "Linen Shirt", Price: 10, Inventory: 1},
			wantErr: domain.ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interactor.Execute(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
