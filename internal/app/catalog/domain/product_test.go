package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() *Product {
	return &Product{
		ID:        "p1",
		Slug:      "blue-shirt",
		Name:      "Blue Shirt",
		Price:     29.99,
		Inventory: 5,
		Category:  "MEN",
	}
}

func TestProduct_Validate(t *testing.T) {
	t.Run("valid product passes", func(t *testing.T) {
		assert.NoError(t, validProduct().Validate())
	})

	t.Run("blank name", func(t *testing.T) {
		p := validProduct()
		p.Name = "   "
		assert.ErrorIs(t, p.Validate(), ErrEmptyName)
	})

	t.Run("zero price", func(t *testing.T) {
		p := validProduct()
		p.Price = 0
		assert.ErrorIs(t, p.Validate(), ErrInvalidPrice)
	})

	t.Run("negative inventory", func(t *testing.T) {
		p := validProduct()
		p.Inventory = -1
		assert.ErrorIs(t, p.Validate(), ErrInvalidInventory)
	})

	t.Run("missing category", func(t *testing.T) {
		p := validProduct()
		p.Category = ""
		assert.ErrorIs(t, p.Validate(), ErrInvalidCategory)
	})
}

func TestNormalizeCategory_Idempotent(t *testing.T) {
	once := NormalizeCategory(" men ")
	assert.Equal(t, "MEN", once)
	assert.Equal(t, once, NormalizeCategory(once))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortPriceDesc, ParseSortKey("price-desc"))
	assert.Equal(t, SortPopular, ParseSortKey("popular"))
	assert.Equal(t, SortNewest, ParseSortKey("newest"))
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("bogus"))
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	t.Run("array form", func(t *testing.T) {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(`["summer","linen"]`), &l))
		assert.Equal(t, StringList{"summer", "linen"}, l)
	})

	t.Run("delimited string form", func(t *testing.T) {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(`"summer, linen ,  sale"`), &l))
		assert.Equal(t, StringList{"summer", "linen", "sale"}, l)
	})

	t.Run("empty entries dropped", func(t *testing.T) {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(`"a,, ,b"`), &l))
		assert.Equal(t, StringList{"a", "b"}, l)
	})

	t.Run("non-string non-array rejected", func(t *testing.T) {
		var l StringList
		assert.Error(t, json.Unmarshal([]byte(`42`), &l))
	})
}
