package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"typical hosted url", "https://img.example.com/store/products/blue-shirt-a1b2.jpg", "blue-shirt-a1b2"},
		{"no extension", "https://img.example.com/store/abc123", "abc123"},
		{"trailing slash", "https://img.example.com/store/", "store"},
		{"empty path", "https://img.example.com", ""},
		{"garbage", "::not-a-url::", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicIDFromURL(tt.in))
		})
	}
}
