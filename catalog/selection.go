package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// SortMode is the user-selected ordering.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortNewest    SortMode = "newest"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

// ParseSortMode maps a query token to a mode; unknown tokens are relevance.
func ParseSortMode(raw string) SortMode {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return mode
	default:
		return SortRelevance
	}
}

// Selection is the per-request filter state. Filters holds at most one value
// per dimension; unset dimensions are absent from the map.
type Selection struct {
	Category string
	Filters  map[Dimension]string
	Page     int
	Limit    int
	Sort     SortMode
}

// Filter returns the selected value for d.
func (s Selection) Filter(d Dimension) (string, bool) {
	v, ok := s.Filters[d]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// PageDefaults controls pagination normalisation.
type PageDefaults struct {
	Limit    int
	MaxLimit int
}

// DefaultPageDefaults matches the Shop and Category pages.
var DefaultPageDefaults = PageDefaults{Limit: 18, MaxLimit: 100}

// ParseSelection builds a Selection from query parameters. Malformed values
// never fail: bad numbers fall back to defaults and unknown sorts to relevance.
func ParseSelection(values url.Values, defaults PageDefaults) Selection {
	if defaults.Limit < 1 {
		defaults.Limit = DefaultPageDefaults.Limit
	}

	sel := Selection{
		Category: strings.TrimSpace(values.Get("category")),
		Filters:  make(map[Dimension]string),
		Page:     parsePositive(values.Get("page"), 1),
		Limit:    parsePositive(values.Get("limit"), defaults.Limit),
		Sort:     ParseSortMode(values.Get("sort")),
	}
	if defaults.MaxLimit > 0 && sel.Limit > defaults.MaxLimit {
		sel.Limit = defaults.MaxLimit
	}

	for _, d := range AllDimensions {
		if v := strings.TrimSpace(values.Get(string(d))); v != "" {
			sel.Filters[d] = v
		}
	}
	return sel
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	if n < 1 {
		return 1
	}
	return n
}
