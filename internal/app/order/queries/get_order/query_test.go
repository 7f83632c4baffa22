package get_order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/order/contracts"
	"github.com/light-bringer/storefront-service/internal/app/order/domain"
	"github.com/light-bringer/storefront-service/internal/auth"
)

type fakeReadModel struct {
	order *contracts.OrderDTO
}

func (f *fakeReadModel) ListOrders(context.Context, *contracts.ListFilter) (*contracts.ListResult, error) {
	return &contracts.ListResult{}, nil
}

func (f *fakeReadModel) GetOrder(_ context.Context, orderID string) (*contracts.OrderDTO, error) {
	if f.order == nil || f.order.OrderID != orderID {
		return nil, domain.ErrOrderNotFound
	}
	return f.order, nil
}

func TestExecute_OwnerSeesOwnOrder(t *testing.T) {
	rm := &fakeReadModel{order: &contracts.OrderDTO{OrderID: "o-1", UserID: "u-1"}}
	q := NewQuery(rm)

	order, err := q.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-1", Role: auth.RoleUser},
		OrderID:   "o-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "o-1", order.OrderID)
}

func TestExecute_ForeignOrderReadsAsNotFound(t *testing.T) {
	rm := &fakeReadModel{order: &contracts.OrderDTO{OrderID: "o-1", UserID: "u-1"}}
	q := NewQuery(rm)

	_, err := q.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "u-2", Role: auth.RoleUser},
		OrderID:   "o-1",
	})

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestExecute_AdminSeesAnyOrder(t *testing.T) {
	rm := &fakeReadModel{order: &contracts.OrderDTO{OrderID: "o-1", UserID: "u-1"}}
	q := NewQuery(rm)

	order, err := q.Execute(context.Background(), &Request{
		Principal: &auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin},
		OrderID:   "o-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "u-1", order.UserID)
}

func TestExecute_RequiresAuthentication(t *testing.T) {
	q := NewQuery(&fakeReadModel{})

	_, err := q.Execute(context.Background(), &Request{OrderID: "o-1"})

	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
