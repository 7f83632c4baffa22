package domain

import (
	"strings"
	"time"
)

// Product is the catalog aggregate. Slug is unique across the store
// and derived from Name; Price must be positive and Inventory
// non-negative.
type Product struct {
	ID           string
	Slug         string
	Name         string
	Description  string
	Price        float64
	SalePrice    *float64
	Inventory    int64
	PrimaryImage string
	ModelImage   string
	Images       []string
	Category     string
	ClothType    string
	Tags         []string
	Sizes        []string
	IsActive     bool
	Featured     bool
	TimesSold    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the product invariants before persistence.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Inventory < 0 {
		return ErrInvalidInventory
	}
	if p.Category == "" {
		return ErrInvalidCategory
	}
	return nil
}

// NormalizeCategory upper-cases a category for matching and storage.
// Idempotent: normalizing an already-normalized value is a no-op.
func NormalizeCategory(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}
