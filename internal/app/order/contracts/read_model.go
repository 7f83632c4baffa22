// Package contracts defines the boundary interfaces and projections of
// the order context.
package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/pagination"
)

// OrderItemDTO is one purchased line on an order view.
type OrderItemDTO struct {
	OrderItemID string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Slug        string    `json:"slug"`
	Image       string    `json:"image"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Size        string    `json:"size,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderDTO is the full order view with its monetary breakdown.
type OrderDTO struct {
	OrderID    string         `json:"id"`
	UserID     string         `json:"userId"`
	Status     string         `json:"status"`
	Subtotal   float64        `json:"subtotal"`
	Tax        float64        `json:"tax"`
	Shipping   float64        `json:"shipping"`
	Discount   float64        `json:"discount"`
	Total      float64        `json:"total"`
	CouponCode string         `json:"couponCode,omitempty"`
	Items      []OrderItemDTO `json:"items"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// ListFilter pages a user's order history.
type ListFilter struct {
	UserID string
	Window pagination.Window
}

// ListResult is one page of an order history, newest first.
type ListResult struct {
	Orders     []*OrderDTO `json:"items"`
	TotalCount int64       `json:"totalCount"`
	HasMore    bool        `json:"hasMore"`
}

// ReadModel is the read-side of the order context. Orders are written
// at checkout by another service; this one only serves views of them.
type ReadModel interface {
	// ListOrders retrieves a page of a user's orders, newest first,
	// items included.
	ListOrders(ctx context.Context, filter *ListFilter) (*ListResult, error)

	// GetOrder loads one order with its items or returns
	// domain.ErrOrderNotFound. Every served order must satisfy
	// domain.Order.ValidateTotals; a violation surfaces as
	// domain.ErrInconsistentTotals instead of a corrupt view.
	GetOrder(ctx context.Context, orderID string) (*OrderDTO, error)
}
