package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID    string              `spanner:"product_id"`
	Slug         string              `spanner:"slug"`
	Name         string              `spanner:"name"`
	Description  string              `spanner:"description"`
	Price        float64             `spanner:"price"`
	SalePrice    spanner.NullFloat64 `spanner:"sale_price"`
	Inventory    int64               `spanner:"inventory"`
	PrimaryImage string              `spanner:"primary_image"`
	ModelImage   string              `spanner:"model_image"`
	Images       []string            `spanner:"images"`
	Category     string              `spanner:"category"`
	ClothType    string              `spanner:"cloth_type"`
	Tags         []string            `spanner:"tags"`
	Sizes        []string            `spanner:"sizes"`
	IsActive     bool                `spanner:"is_active"`
	Featured     bool                `spanner:"featured"`
	TimesSold    int64               `spanner:"times_sold"`
	CreatedAt    time.Time           `spanner:"created_at"`
	UpdatedAt    time.Time           `spanner:"updated_at"`
}
