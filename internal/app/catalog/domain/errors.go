package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrInvalidPrice     = errors.New("product price must be positive")
	ErrInvalidInventory = errors.New("product inventory cannot be negative")
	ErrInvalidCategory  = errors.New("product category cannot be empty")
)
