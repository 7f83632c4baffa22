package m_order

// Field name constants for the orders table. Orders are written by the
// checkout service; this layer only reads them.
const (
	TableName = "orders"

	OrderID    = "order_id"
	UserID     = "user_id"
	Status     = "status"
	Subtotal   = "subtotal"
	Tax        = "tax"
	Shipping   = "shipping"
	Discount   = "discount"
	Total      = "total"
	AddressID  = "address_id"
	CouponCode = "coupon_code"
	CreatedAt  = "created_at"
	UpdatedAt  = "updated_at"
)
