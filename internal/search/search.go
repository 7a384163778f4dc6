package search

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortNameAsc    SortKey = "name-asc"
)

var sortKeys = []SortKey{SortRelevance, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNameAsc}

// ParseSortKey maps the empty string to SortRelevance and rejects unknown keys.
func ParseSortKey(raw string) (SortKey, error) {
	if raw == "" {
		return SortRelevance, nil
	}

	key := SortKey(raw)
	if !slices.Contains(sortKeys, key) {
		return "", fmt.Errorf("unknown sort key %q", raw)
	}

	return key, nil
}

func SortKeys() []SortKey {
	return slices.Clone(sortKeys)
}

func matches(p models.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle)
}

// DeriveView filters catalog by query (case-insensitive substring of name or
// brand) and orders the result by key. Sorting is stable, so products with equal
// keys keep their catalog order. The input is never modified and the result is
// always a fresh, non-nil slice.
func DeriveView(catalog []models.Product, query string, key SortKey) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(query))

	view := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if needle == "" || matches(p, needle) {
			view = append(view, p)
		}
	}

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(view, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(view, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortRatingDesc:
		slices.SortStableFunc(view, func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortNameAsc:
		// Collators keep internal buffers and cannot be shared across goroutines.
		c := collate.New(language.English)
		slices.SortStableFunc(view, func(a, b models.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	}

	return view
}
