package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("category", "MEN") generates "category = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for equality comparison.
func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// neqCondition implements inequality comparison (field != value).
type neqCondition struct {
	field string
	value interface{}
}

// Neq creates a WHERE condition for inequality comparison.
// Used to exclude a record by identity, e.g. Neq("product_id", id)
// when checking slug collisions against other records.
func Neq(field string, value interface{}) Condition {
	return &neqCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for inequality comparison.
func (c *neqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s != @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// containsCondition implements case-insensitive substring matching.
type containsCondition struct {
	field string
	value string
}

// Contains creates a WHERE condition for case-insensitive substring search.
// Example: Contains("name", "shirt") generates "LOWER(name) LIKE @p0"
// with the parameter bound to "%shirt%".
func Contains(field string, value string) Condition {
	return &containsCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for substring matching.
func (c *containsCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("LOWER(%s) LIKE @%s", c.field, paramName)
	params := map[string]interface{}{
		paramName: "%" + strings.ToLower(c.value) + "%",
	}
	return sql, params
}

// arrayContainsCondition implements ARRAY membership testing.
type arrayContainsCondition struct {
	field string
	value interface{}
}

// ArrayContains creates a WHERE condition testing membership in an
// ARRAY column. Example: ArrayContains("tags", "summer") generates
// "@p0 IN UNNEST(tags)".
func ArrayContains(field string, value interface{}) Condition {
	return &arrayContainsCondition{
		field: field,
		value: value,
	}
}

// SQL generates the SQL fragment for array membership.
func (c *arrayContainsCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("@%s IN UNNEST(%s)", paramName, c.field)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// arrayOverlapsCondition tests whether an ARRAY column shares any
// element with a given list of values.
type arrayOverlapsCondition struct {
	field  string
	values []string
}

// ArrayOverlaps creates a WHERE condition that matches rows whose ARRAY
// column contains at least one of the given values. Example:
// ArrayOverlaps("tags", tags) generates
// "EXISTS (SELECT 1 FROM UNNEST(tags) AS elem WHERE elem IN UNNEST(@p0))".
func ArrayOverlaps(field string, values []string) Condition {
	return &arrayOverlapsCondition{
		field:  field,
		values: values,
	}
}

// SQL generates the SQL fragment for array overlap.
func (c *arrayOverlapsCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("EXISTS (SELECT 1 FROM UNNEST(%s) AS elem WHERE elem IN UNNEST(@%s))", c.field, paramName)
	params := map[string]interface{}{
		paramName: c.values,
	}
	return sql, params
}

// orCondition combines child conditions with OR logic.
type orCondition struct {
	conditions []Condition
}

// Or combines conditions with OR logic inside a single parenthesized
// group. An empty group generates no constraint. Typical use is the
// free-text search predicate across several columns:
//
//	Or(Contains("name", q), Contains("description", q), ArrayContains("tags", q))
func Or(conditions ...Condition) Condition {
	return &orCondition{conditions: conditions}
}

// SQL generates the parenthesized OR group, delegating parameter
// naming to the children so names stay unique across the clause.
func (c *orCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	if len(c.conditions) == 0 {
		return "TRUE", map[string]interface{}{}
	}

	parts := make([]string, 0, len(c.conditions))
	params := make(map[string]interface{})
	for _, cond := range c.conditions {
		fragment, condParams := cond.SQL(paramIndex)
		parts = append(parts, fragment)
		for k, v := range condParams {
			params[k] = v
		}
		paramIndex += len(condParams)
	}

	return "(" + strings.Join(parts, " OR ") + ")", params
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("sale_price") generates "sale_price IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

// isNullCondition implements IS NULL comparison.
type isNullCondition struct {
	field string
}

// SQL generates the SQL fragment for IS NULL comparison.
func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	sql := fmt.Sprintf("%s IS NULL", c.field)
	return sql, map[string]interface{}{}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
// Example: IsNotNull("sale_price") generates "sale_price IS NOT NULL"
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

// isNotNullCondition implements IS NOT NULL comparison.
type isNotNullCondition struct {
	field string
}

// SQL generates the SQL fragment for IS NOT NULL comparison.
func (c *isNotNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	sql := fmt.Sprintf("%s IS NOT NULL", c.field)
	return sql, map[string]interface{}{}
}
