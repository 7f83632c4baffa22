package domain

// SortKey is the enumerated ordering a catalog listing can request.
type SortKey string

const (
	// SortNewest orders by creation time, newest first. Default.
	SortNewest SortKey = "newest"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc SortKey = "price-asc"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc SortKey = "price-desc"
	// SortPopular orders by units sold, best sellers first.
	SortPopular SortKey = "popular"
)

// ParseSortKey maps a raw query parameter to a SortKey. Absent or
// unknown values fall back to SortNewest.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortPopular:
		return SortKey(raw)
	default:
		return SortNewest
	}
}
