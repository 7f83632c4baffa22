package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID    = "product_id"
	Slug         = "slug"
	Name         = "name"
	Description  = "description"
	Price        = "price"
	SalePrice    = "sale_price"
	Inventory    = "inventory"
	PrimaryImage = "primary_image"
	ModelImage   = "model_image"
	Images       = "images"
	Category     = "category"
	ClothType    = "cloth_type"
	Tags         = "tags"
	Sizes        = "sizes"
	IsActive     = "is_active"
	Featured     = "featured"
	TimesSold    = "times_sold"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"
)
