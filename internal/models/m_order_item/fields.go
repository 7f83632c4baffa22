package m_order_item

// Field name constants for the order_items table. Read-only here.
const (
	TableName = "order_items"

	OrderItemID = "order_item_id"
	OrderID     = "order_id"
	ProductID   = "product_id"
	Quantity    = "quantity"
	UnitPrice   = "unit_price"
	Size        = "size"
	Color       = "color"
	CreatedAt   = "created_at"
)
