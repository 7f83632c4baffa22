// Package repo implements the order context's Spanner read model.
package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-service/internal/app/order/contracts"
	"github.com/light-bringer/storefront-service/internal/app/order/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/models/m_order_item"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// orderColumns is the full column set of the orders table.
var orderColumns = []string{
	m_order.OrderID,
	m_order.UserID,
	m_order.Status,
	m_order.Subtotal,
	m_order.Tax,
	m_order.Shipping,
	m_order.Discount,
	m_order.Total,
	m_order.AddressID,
	m_order.CouponCode,
	m_order.CreatedAt,
	m_order.UpdatedAt,
}

// ReadModelImpl implements the order ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// ListOrders retrieves a page of a user's orders, newest first, with
// items attached. Each served order must satisfy the total invariant.
func (rm *ReadModelImpl) ListOrders(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	base := query.From(m_order.TableName).
		Where(query.Eq(m_order.UserID, filter.UserID))

	stmt := base.
		Select(orderColumns...).
		OrderBy(m_order.CreatedAt, query.Desc).
		Limit(filter.Window.Limit).
		Offset(filter.Window.Skip).
		Build()

	orders, err := rm.queryOrders(ctx, stmt)
	if err != nil {
		return nil, err
	}

	if err := rm.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	totalCount, err := rm.queryCount(ctx, base.Count().Build())
	if err != nil {
		return nil, err
	}

	return &contracts.ListResult{
		Orders:     orders,
		TotalCount: totalCount,
		HasMore:    filter.Window.HasMore(len(orders), totalCount),
	}, nil
}

// GetOrder loads one order with its items. The monetary breakdown is
// checked before the view is served.
func (rm *ReadModelImpl) GetOrder(ctx context.Context, orderID string) (*contracts.OrderDTO, error) {
	stmt := query.From(m_order.TableName).
		Select(orderColumns...).
		Where(query.Eq(m_order.OrderID, orderID)).
		Limit(1).
		Build()

	orders, err := rm.queryOrders(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrOrderNotFound
	}

	if err := rm.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders[0], nil
}

// queryOrders executes an order-projection statement and enforces the
// total invariant on every row.
func (rm *ReadModelImpl) queryOrders(ctx context.Context, stmt spanner.Statement) ([]*contracts.OrderDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	orders := []*contracts.OrderDTO{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}

		check := domain.Order{
			Subtotal: data.Subtotal,
			Tax:      data.Tax,
			Shipping: data.Shipping,
			Discount: data.Discount,
			Total:    data.Total,
		}
		if err := check.ValidateTotals(); err != nil {
			return nil, fmt.Errorf("order %s: %w", data.OrderID, err)
		}

		orders = append(orders, dataToDTO(&data))
	}

	return orders, nil
}

// queryCount executes a COUNT(*) statement.
func (rm *ReadModelImpl) queryCount(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

// attachItems loads the items of a page of orders in one statement and
// distributes them to their parents.
func (rm *ReadModelImpl) attachItems(ctx context.Context, orders []*contracts.OrderDTO) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	byID := make(map[string]*contracts.OrderDTO, len(orders))
	for _, order := range orders {
		ids = append(ids, order.OrderID)
		byID[order.OrderID] = order
	}

	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, p.%s, p.%s, p.%s "+
				"FROM %s i JOIN %s p ON i.%s = p.%s "+
				"WHERE i.%s IN UNNEST(@ids) ORDER BY i.%s",
			m_order_item.OrderItemID, m_order_item.OrderID, m_order_item.ProductID,
			m_order_item.Quantity, m_order_item.UnitPrice, m_order_item.Size,
			m_order_item.Color, m_order_item.CreatedAt,
			m_product.Name, m_product.Slug, m_product.PrimaryImage,
			m_order_item.TableName, m_product.TableName,
			m_order_item.ProductID, m_product.ProductID,
			m_order_item.OrderID, m_order_item.CreatedAt,
		),
		Params: map[string]interface{}{"ids": ids},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to iterate order items: %w", err)
		}

		var item contracts.OrderItemDTO
		var orderID string
		if err := row.Columns(
			&item.OrderItemID, &orderID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.Size,
			&item.Color, &item.CreatedAt,
			&item.ProductName, &item.Slug, &item.Image,
		); err != nil {
			return fmt.Errorf("failed to parse order item: %w", err)
		}

		if parent, ok := byID[orderID]; ok {
			parent.Items = append(parent.Items, item)
		}
	}

	for _, order := range orders {
		if order.Items == nil {
			order.Items = []contracts.OrderItemDTO{}
		}
	}
	return nil
}

// dataToDTO converts database Data to the order view.
func dataToDTO(data *m_order.Data) *contracts.OrderDTO {
	dto := &contracts.OrderDTO{
		OrderID:   data.OrderID,
		UserID:    data.UserID,
		Status:    data.Status,
		Subtotal:  data.Subtotal,
		Tax:       data.Tax,
		Shipping:  data.Shipping,
		Discount:  data.Discount,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.CouponCode.Valid {
		dto.CouponCode = data.CouponCode.StringVal
	}
	return dto
}
