package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction is an ORDER BY direction.
type Direction int

const (
	// Asc sorts ascending.
	Asc Direction = iota
	// Desc sorts descending.
	Desc
)

// Builder assembles parameterized SELECT statements for Cloud Spanner.
// Builders are immutable: every combinator returns a copy, so a base
// listing query can branch into its row and COUNT(*) variants without
// the two interfering. Parameter names (@p0, @p1, ...) are assigned at
// Build time in condition order.
type Builder struct {
	table      string
	columns    []string
	conditions []Condition
	orderCol   string
	orderDir   Direction
	limit      int64
	offset     int64
}

// From starts a builder over the given table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select appends columns to the projection. Without any Select the
// statement falls back to SELECT *.
func (b *Builder) Select(columns ...string) *Builder {
	next := b.clone()
	next.columns = append(next.columns, columns...)
	return next
}

// Where appends a condition. Conditions are joined with AND, so an
// absent filter simply never calls Where.
func (b *Builder) Where(condition Condition) *Builder {
	next := b.clone()
	next.conditions = append(next.conditions, condition)
	return next
}

// OrderBy sets the sort column and direction.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	next := b.clone()
	next.orderCol = column
	next.orderDir = direction
	return next
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	next := b.clone()
	next.limit = limit
	return next
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	next := b.clone()
	next.offset = offset
	return next
}

// Count derives the COUNT(*) variant of this builder: same FROM and
// WHERE, no projection, ordering or window. Listings use it to price a
// total alongside the page.
func (b *Builder) Count() *Builder {
	next := b.clone()
	next.columns = []string{"COUNT(*)"}
	next.limit = 0
	next.offset = 0
	next.orderCol = ""
	return next
}

// Build renders the statement with its parameter map.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.columns, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.conditions) > 0 {
		sql.WriteString(" WHERE ")
		parts := make([]string, 0, len(b.conditions))
		paramIndex := 0
		for _, condition := range b.conditions {
			fragment, condParams := condition.SQL(paramIndex)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if b.orderCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderCol)
		if b.orderDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limit > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limit
	}

	if b.offset > 0 {
		sql.WriteString(" OFFSET @offset")
		params["offset"] = b.offset
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	next := &Builder{
		table:      b.table,
		columns:    make([]string, len(b.columns)),
		conditions: make([]Condition, len(b.conditions)),
		orderCol:   b.orderCol,
		orderDir:   b.orderDir,
		limit:      b.limit,
		offset:     b.offset,
	}
	copy(next.columns, b.columns)
	copy(next.conditions, b.conditions)
	return next
}

// String renders the statement for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
