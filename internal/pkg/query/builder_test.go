package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/models/m_product"
)

func TestBuilder_SelectColumns(t *testing.T) {
	stmt := From(m_product.TableName).
		Select(m_product.ProductID, m_product.Slug, m_product.Name).
		Build()

	assert.Equal(t, "SELECT product_id, slug, name FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_DefaultsToStar(t *testing.T) {
	stmt := From(m_product.TableName).Build()

	assert.Equal(t, "SELECT * FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleCondition(t *testing.T) {
	stmt := From(m_product.TableName).
		Select(m_product.ProductID).
		Where(Eq(m_product.IsActive, true)).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE is_active = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": true}, stmt.Params)
}

func TestBuilder_ConditionsJoinedWithAnd(t *testing.T) {
	stmt := From(m_product.TableName).
		Select(m_product.ProductID).
		Where(Eq(m_product.IsActive, true)).
		Where(Eq(m_product.Category, "MEN")).
		Build()

	assert.Equal(t, "SELECT product_id FROM products WHERE is_active = @p0 AND category = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
		"p1": "MEN",
	}, stmt.Params)
}

func TestBuilder_AbsentFiltersAddNothing(t *testing.T) {
	// A listing with no category, status or search never calls Where,
	// so the statement carries no WHERE clause at all.
	stmt := From(m_product.TableName).
		Select(m_product.ProductID).
		OrderBy(m_product.CreatedAt, Desc).
		Build()

	assert.Equal(t, "SELECT product_id FROM products ORDER BY created_at DESC", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderDirections(t *testing.T) {
	asc := From(m_product.TableName).
		Select(m_product.Name).
		OrderBy(m_product.Price, Asc).
		Build()
	assert.Equal(t, "SELECT name FROM products ORDER BY price ASC", asc.SQL)

	desc := From(m_product.TableName).
		Select(m_product.Name).
		OrderBy(m_product.TimesSold, Desc).
		Build()
	assert.Equal(t, "SELECT name FROM products ORDER BY times_sold DESC", desc.SQL)
}

func TestBuilder_WindowParams(t *testing.T) {
	stmt := From(m_product.TableName).
		Select(m_product.ProductID).
		Limit(10).
		Offset(20).
		Build()

	assert.Equal(t, "SELECT product_id FROM products LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(10),
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_PublicListingShape(t *testing.T) {
	stmt := From(m_product.TableName).
		Select(m_product.ProductID, m_product.Slug, m_product.Name, m_product.Price).
		Where(Eq(m_product.IsActive, true)).
		Where(Eq(m_product.Category, "WOMEN")).
		Where(Or(
			Contains(m_product.Name, "linen"),
			Contains(m_product.Description, "linen"),
			ArrayContains(m_product.Tags, "linen"),
		)).
		OrderBy(m_product.CreatedAt, Desc).
		Limit(10).
		Offset(10).
		Build()

	assert.Equal(t,
		"SELECT product_id, slug, name, price FROM products"+
			" WHERE is_active = @p0 AND category = @p1"+
			" AND (LOWER(name) LIKE @p2 OR LOWER(description) LIKE @p3 OR @p4 IN UNNEST(tags))"+
			" ORDER BY created_at DESC LIMIT @limit OFFSET @offset",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":     true,
		"p1":     "WOMEN",
		"p2":     "%linen%",
		"p3":     "%linen%",
		"p4":     "linen",
		"limit":  int64(10),
		"offset": int64(10),
	}, stmt.Params)
}

func TestBuilder_SimilarProductsShape(t *testing.T) {
	stmt := From(m_product.TableName).
		Select(m_product.ProductID).
		Where(Eq(m_product.IsActive, true)).
		Where(Neq(m_product.ProductID, "p-1")).
		Where(Or(
			Eq(m_product.Category, "MEN"),
			ArrayOverlaps(m_product.Tags, []string{"summer", "linen"}),
		)).
		OrderBy(m_product.TimesSold, Desc).
		Build()

	assert.Equal(t,
		"SELECT product_id FROM products WHERE is_active = @p0 AND product_id != @p1"+
			" AND (category = @p2 OR EXISTS (SELECT 1 FROM UNNEST(tags) AS elem WHERE elem IN UNNEST(@p3)))"+
			" ORDER BY times_sold DESC",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": true,
		"p1": "p-1",
		"p2": "MEN",
		"p3": []string{"summer", "linen"},
	}, stmt.Params)
}

func TestBuilder_CountReusesFilters(t *testing.T) {
	base := From(m_product.TableName).
		Select(m_product.ProductID, m_product.Name).
		Where(Eq(m_product.IsActive, true)).
		OrderBy(m_product.CreatedAt, Desc).
		Limit(10).
		Offset(30)

	rows := base.Build()
	require.Contains(t, rows.SQL, "LIMIT @limit")
	require.Contains(t, rows.SQL, "OFFSET @offset")

	count := base.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE is_active = @p0", count.SQL)
	assert.Equal(t, map[string]interface{}{"p0": true}, count.Params)

	// Deriving the count leaves the row builder untouched.
	assert.Equal(t, rows.SQL, base.Build().SQL)
}

func TestBuilder_CountWithoutFilters(t *testing.T) {
	stmt := From(m_product.TableName).
		Select(m_product.ProductID).
		Count().
		Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From(m_product.TableName).Select(m_product.ProductID)

	active := base.Where(Eq(m_product.IsActive, true)).Build()
	featured := base.Where(Eq(m_product.Featured, true)).Build()

	assert.Contains(t, active.SQL, "is_active = @p0")
	assert.NotContains(t, active.SQL, "featured")

	assert.Contains(t, featured.SQL, "featured = @p0")
	assert.NotContains(t, featured.SQL, "is_active")
}

func TestBuilder_SelectAppends(t *testing.T) {
	stmt := From(m_product.TableName).
		Select(m_product.ProductID, m_product.Slug).
		Select(m_product.Name).
		Build()

	assert.Equal(t, "SELECT product_id, slug, name FROM products", stmt.SQL)
}

func TestBuilder_String(t *testing.T) {
	str := From(m_product.TableName).
		Select(m_product.ProductID).
		Where(Eq(m_product.IsActive, true)).
		String()

	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
	assert.Contains(t, str, "products")
}
