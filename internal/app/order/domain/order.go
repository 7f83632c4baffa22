// Package domain holds the order aggregate read by this service.
// Orders are written at checkout; here they are only viewed, so the
// rules are about consistency of what is read, not about mutation.
package domain

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrOrderNotFound is returned when no order matches the lookup.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInconsistentTotals is returned when an order's monetary
	// breakdown does not add up to its total.
	ErrInconsistentTotals = errors.New("order totals are inconsistent")
)

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// totalTolerance absorbs float rounding in stored monetary values.
const totalTolerance = 0.01

// Order is the purchase aggregate with its monetary breakdown.
type Order struct {
	ID         string
	UserID     string
	Status     Status
	Subtotal   float64
	Tax        float64
	Shipping   float64
	Discount   float64
	Total      float64
	AddressID  string
	CouponCode string
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem is one purchased line with its price snapshot.
type OrderItem struct {
	ID        string
	ProductID string
	Quantity  int64
	UnitPrice float64
	Size      string
	Color     string
	CreatedAt time.Time
}

// ValidateTotals checks that total = subtotal + tax + shipping −
// discount within rounding tolerance. A violation means the stored
// record is corrupt and must not be served.
func (o *Order) ValidateTotals() error {
	expected := o.Subtotal + o.Tax + o.Shipping - o.Discount
	if math.Abs(expected-o.Total) > totalTolerance {
		return ErrInconsistentTotals
	}
	return nil
}
