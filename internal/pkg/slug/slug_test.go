package slug

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Blue Shirt", "blue-shirt"},
		{"punctuation collapsed", "Kids' T-Shirt  (Red)", "kids-t-shirt-red"},
		{"leading and trailing trimmed", "  --Summer Sale!  ", "summer-sale"},
		{"already a slug", "blue-shirt", "blue-shirt"},
		{"digits kept", "Shirt 2000", "shirt-2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	first := Make("Blue Shirt")
	assert.Equal(t, first, Make(first))
}

func TestUnique_NoCollision(t *testing.T) {
	never := func(ctx context.Context, s string) (bool, error) { return false, nil }

	got, err := Unique(context.Background(), "Blue Shirt", never)
	require.NoError(t, err)
	assert.Equal(t, "blue-shirt", got)

	// Same name, still no prior record: same slug.
	again, err := Unique(context.Background(), "Blue Shirt", never)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestUnique_CollisionAppendsSuffix(t *testing.T) {
	taken := func(ctx context.Context, s string) (bool, error) {
		return s == "blue-shirt", nil
	}

	got, err := Unique(context.Background(), "Blue Shirt", taken)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(got, "blue-shirt-"), "got %q", got)
	assert.NotEqual(t, "blue-shirt", got)

	n, err := strconv.Atoi(strings.TrimPrefix(got, "blue-shirt-"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 1000)
}

func TestUnique_PropagatesLookupError(t *testing.T) {
	boom := errors.New("storage down")
	failing := func(ctx context.Context, s string) (bool, error) { return false, boom }

	_, err := Unique(context.Background(), "Blue Shirt", failing)
	assert.ErrorIs(t, err, boom)
}
