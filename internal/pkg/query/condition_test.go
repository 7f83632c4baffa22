package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	sql, params := Eq("category", "MEN").SQL(3)

	assert.Equal(t, "category = @p3", sql)
	assert.Equal(t, map[string]interface{}{"p3": "MEN"}, params)
}

func TestNeq(t *testing.T) {
	sql, params := Neq("product_id", "abc").SQL(0)

	assert.Equal(t, "product_id != @p0", sql)
	assert.Equal(t, map[string]interface{}{"p0": "abc"}, params)
}

func TestContains_LowercasesAndWraps(t *testing.T) {
	sql, params := Contains("name", "Blue Shirt").SQL(2)

	assert.Equal(t, "LOWER(name) LIKE @p2", sql)
	assert.Equal(t, map[string]interface{}{"p2": "%blue shirt%"}, params)
}

func TestArrayContains(t *testing.T) {
	sql, params := ArrayContains("tags", "summer").SQL(0)

	assert.Equal(t, "@p0 IN UNNEST(tags)", sql)
	assert.Equal(t, map[string]interface{}{"p0": "summer"}, params)
}

func TestArrayOverlaps(t *testing.T) {
	sql, params := ArrayOverlaps("tags", []string{"summer", "linen"}).SQL(0)

	assert.Equal(t, "EXISTS (SELECT 1 FROM UNNEST(tags) AS elem WHERE elem IN UNNEST(@p0))", sql)
	assert.Equal(t, map[string]interface{}{"p0": []string{"summer", "linen"}}, params)
}

func TestOr_UniqueParamNames(t *testing.T) {
	cond := Or(
		Contains("name", "shirt"),
		Contains("description", "shirt"),
		ArrayContains("tags", "shirt"),
	)
	sql, params := cond.SQL(0)

	assert.Equal(t,
		"(LOWER(name) LIKE @p0 OR LOWER(description) LIKE @p1 OR @p2 IN UNNEST(tags))",
		sql)
	assert.Len(t, params, 3)
	assert.Equal(t, "%shirt%", params["p0"])
	assert.Equal(t, "%shirt%", params["p1"])
	assert.Equal(t, "shirt", params["p2"])
}

func TestOr_Empty(t *testing.T) {
	sql, params := Or().SQL(0)

	assert.Equal(t, "TRUE", sql)
	assert.Empty(t, params)
}

func TestNullChecks(t *testing.T) {
	sql, params := IsNull("sale_price").SQL(0)
	assert.Equal(t, "sale_price IS NULL", sql)
	assert.Empty(t, params)

	sql, params = IsNotNull("sale_price").SQL(0)
	assert.Equal(t, "sale_price IS NOT NULL", sql)
	assert.Empty(t, params)
}

func TestBuilder_SearchPredicate(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("is_active", true)).
		Where(Or(Contains("name", "shirt"), ArrayContains("tags", "shirt"))).
		Build()

	assert.Equal(t,
		"SELECT product_id, name FROM products WHERE is_active = @p0 AND (LOWER(name) LIKE @p1 OR @p2 IN UNNEST(tags))",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
		"p1": "%shirt%",
		"p2": "shirt",
	}, stmt.Params)
}
