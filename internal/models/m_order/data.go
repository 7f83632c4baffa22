package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table.
type Data struct {
	OrderID    string             `spanner:"order_id"`
	UserID     string             `spanner:"user_id"`
	Status     string             `spanner:"status"`
	Subtotal   float64            `spanner:"subtotal"`
	Tax        float64            `spanner:"tax"`
	Shipping   float64            `spanner:"shipping"`
	Discount   float64            `spanner:"discount"`
	Total      float64            `spanner:"total"`
	AddressID  string             `spanner:"address_id"`
	CouponCode spanner.NullString `spanner:"coupon_code"`
	CreatedAt  time.Time          `spanner:"created_at"`
	UpdatedAt  time.Time          `spanner:"updated_at"`
}
