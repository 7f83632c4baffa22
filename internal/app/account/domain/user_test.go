package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	assert.Equal(t, NormalizeEmail("a@b.co"), NormalizeEmail(NormalizeEmail("a@b.co")))
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "Jane", "jane@example.com", "correct-horse", nil},
		{"blank name", "   ", "jane@example.com", "correct-horse", ErrEmptyName},
		{"missing at sign", "Jane", "jane.example.com", "correct-horse", ErrInvalidEmail},
		{"missing domain", "Jane", "jane@", "correct-horse", ErrInvalidEmail},
		{"short password", "Jane", "jane@example.com", "short", ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.userName, tt.email, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
