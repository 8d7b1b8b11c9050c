// Package catalog implements the query layer over the fixed tour catalog:
// filtering, sorting, derived aggregates, and query-parameter parsing. All
// functions are pure and never mutate their input, so they are safe for
// unlimited concurrent callers.
package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/traveltours/traveltours-api/internal/models"
	pkgerrors "github.com/traveltours/traveltours-api/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter returns the subsequence of tours satisfying every active bound in f.
// Absent bounds do not constrain; an empty FilterState is the identity and
// returns the input slice unchanged.
func Filter(tours []*models.Tour, f models.FilterState) []*models.Tour {
	if f.IsEmpty() {
		return tours
	}

	out := make([]*models.Tour, 0, len(tours))
	for _, t := range tours {
		if matches(t, f) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t *models.Tour, f models.FilterState) bool {
	if f.Region != nil && t.Region != *f.Region {
		return false
	}
	if f.MinPrice != nil && t.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && t.Price > *f.MaxPrice {
		return false
	}
	if f.MinDays != nil && t.Duration.Days < *f.MinDays {
		return false
	}
	if f.MaxDays != nil && t.Duration.Days > *f.MaxDays {
		return false
	}
	return true
}

// Sort returns a new slice ordered by the given key. The sort is stable:
// tours with equal keys keep their original relative order. The input is
// never mutated. Unknown keys fall back to name order.
func Sort(tours []*models.Tour, key models.SortOption) []*models.Tour {
	sorted := make([]*models.Tour, len(tours))
	copy(sorted, tours)

	switch key {
	case models.SortByPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case models.SortByPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case models.SortByDurationAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Duration.Days < sorted[j].Duration.Days })
	case models.SortByDurationDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Duration.Days > sorted[j].Duration.Days })
	default:
		// Collators keep internal buffers, so build one per call rather
		// than sharing across goroutines.
		c := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}

	return sorted
}

// Featured returns the tours flagged for the homepage, preserving catalog order.
func Featured(tours []*models.Tour) []*models.Tour {
	out := make([]*models.Tour, 0, len(tours))
	for _, t := range tours {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}

// ByRegion returns the tours in the given region, preserving catalog order.
func ByRegion(tours []*models.Tour, region models.Region) []*models.Tour {
	out := make([]*models.Tour, 0, len(tours))
	for _, t := range tours {
		if t.Region == region {
			out = append(out, t)
		}
	}
	return out
}

// DistinctRegions returns the set of regions present in the catalog, in
// first-appearance order.
func DistinctRegions(tours []*models.Tour) []models.Region {
	seen := make(map[models.Region]bool, len(models.Regions))
	out := make([]models.Region, 0, len(models.Regions))
	for _, t := range tours {
		if !seen[t.Region] {
			seen[t.Region] = true
			out = append(out, t.Region)
		}
	}
	return out
}

// PriceRange returns the min and max price across the catalog. The shipped
// catalog is never empty, but the guard keeps the aggregate total.
func PriceRange(tours []*models.Tour) (models.PriceRange, error) {
	if len(tours) == 0 {
		return models.PriceRange{}, pkgerrors.ErrEmptyCatalog
	}

	pr := models.PriceRange{Min: tours[0].Price, Max: tours[0].Price}
	for _, t := range tours[1:] {
		if t.Price < pr.Min {
			pr.Min = t.Price
		}
		if t.Price > pr.Max {
			pr.Max = t.Price
		}
	}
	return pr, nil
}

// ParseFilterState builds a FilterState from request query parameters.
// A numeric parameter that is present but malformed is dropped so the bound
// fails to constrain instead of poisoning every comparison; unknown sort
// values fall back to name order and unrecognized keys are ignored.
func ParseFilterState(params url.Values) models.FilterState {
	f := models.FilterState{
		MinPrice: parseBound(params.Get("minPrice")),
		MaxPrice: parseBound(params.Get("maxPrice")),
		MinDays:  parseBound(params.Get("minDays")),
		MaxDays:  parseBound(params.Get("maxDays")),
		Sort:     models.ParseSortOption(params.Get("sort")),
	}

	// Any non-empty region value is kept as-is: an unknown region simply
	// matches no tour, which mirrors exact-match filtering rather than
	// silently showing the full catalog.
	if r := models.Region(strings.TrimSpace(params.Get("region"))); r != "" {
		f.Region = &r
	}

	return f
}

func parseBound(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
