package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTotals(t *testing.T) {
	tests := []struct {
		name    string
		order   Order
		wantErr error
	}{
		{
			name:  "consistent",
			order: Order{Subtotal: 100, Tax: 8.25, Shipping: 5, Discount: 10, Total: 103.25},
		},
		{
			name:  "within rounding tolerance",
			order: Order{Subtotal: 33.33, Tax: 2.75, Shipping: 4.99, Discount: 0, Total: 41.08},
		},
		{
			name:    "total too high",
			order:   Order{Subtotal: 100, Tax: 8.25, Shipping: 5, Discount: 10, Total: 110},
			wantErr: ErrInconsistentTotals,
		},
		{
			name:    "discount not applied",
			order:   Order{Subtotal: 100, Tax: 0, Shipping: 0, Discount: 20, Total: 100},
			wantErr: ErrInconsistentTotals,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.ValidateTotals()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
