// Package pagination converts page- and offset-style request parameters
// into query windows and derives result metadata from total counts.
package pagination

// DefaultLimit is used when a caller does not specify a page size.
const DefaultLimit = 10

// MaxLimit caps the page size to protect the storage layer.
const MaxLimit = 100

// Window is the offset/limit pair handed to the query builder.
type Window struct {
	Skip  int64
	Limit int64
}

// FromSkipLimit builds a Window from an explicit (skip, limit) pair.
// Negative skip is treated as zero; a non-positive limit falls back to
// DefaultLimit and anything above MaxLimit is clamped.
func FromSkipLimit(skip, limit int64) Window {
	if skip < 0 {
		skip = 0
	}
	return Window{Skip: skip, Limit: clampLimit(limit)}
}

// FromPage builds a Window from a 1-based (page, pageSize) pair using
// skip = (page-1) * pageSize. A page below 1 is treated as page 1.
func FromPage(page, pageSize int64) Window {
	if page < 1 {
		page = 1
	}
	limit := clampLimit(pageSize)
	return Window{Skip: (page - 1) * limit, Limit: limit}
}

// TotalPages returns ceil(totalCount / limit). A window past the end of
// the result set still reports the true page count.
func (w Window) TotalPages(totalCount int64) int64 {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + w.Limit - 1) / w.Limit
}

// HasMore reports whether rows remain beyond this window given the
// number of rows actually returned. A skip past the end yields an empty
// result and HasMore false rather than an error.
func (w Window) HasMore(returned int, totalCount int64) bool {
	return w.Skip+int64(returned) < totalCount
}

// Page returns the 1-based page number this window corresponds to.
// Only meaningful for windows built with FromPage.
func (w Window) Page() int64 {
	return w.Skip/w.Limit + 1
}

func clampLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
