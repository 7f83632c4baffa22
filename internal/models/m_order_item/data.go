package m_order_item

import "time"

// Data represents the database model for the order_items table.
// UnitPrice is a snapshot of the product price at purchase time.
type Data struct {
	OrderItemID string    `spanner:"order_item_id"`
	OrderID     string    `spanner:"order_id"`
	ProductID   string    `spanner:"product_id"`
	Quantity    int64     `spanner:"quantity"`
	UnitPrice   float64   `spanner:"unit_price"`
	Size        string    `spanner:"size"`
	Color       string    `spanner:"color"`
	CreatedAt   time.Time `spanner:"created_at"`
}
