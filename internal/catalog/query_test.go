package catalog_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/traveltours/traveltours-api/internal/catalog"
	"github.com/traveltours/traveltours-api/internal/models"
	pkgerrors "github.com/traveltours/traveltours-api/pkg/errors"
)

func makeTour(id, name string, region models.Region, price, days int, featured bool) *models.Tour {
	return &models.Tour{
		ID:       id,
		Slug:     id,
		Name:     name,
		Region:   region,
		Price:    price,
		Duration: models.Duration{Days: days, Nights: days - 1},
		Featured: featured,
	}
}

func testCatalog() []*models.Tour {
	return []*models.Tour{
		makeTour("t1", "Santorini Escape", models.RegionEurope, 1200, 5, true),
		makeTour("t2", "Bali Retreat", models.RegionAsia, 900, 7, false),
		makeTour("t3", "Alps Trek", models.RegionEurope, 2100, 10, true),
		makeTour("t4", "Kyoto Walk", models.RegionAsia, 1200, 4, false),
		makeTour("t5", "Patagonia Trail", models.RegionAmericas, 3000, 14, true),
		makeTour("t6", "Serengeti Safari", models.RegionAfrica, 2800, 8, false),
	}
}

func intPtr(n int) *int { return &n }

func regionPtr(r models.Region) *models.Region { return &r }

func slugs(tours []*models.Tour) []string {
	out := make([]string, 0, len(tours))
	for _, t := range tours {
		out = append(out, t.Slug)
	}
	return out
}

func TestFilter_EmptyStateIsIdentity(t *testing.T) {
	tours := testCatalog()

	got := catalog.Filter(tours, models.FilterState{})

	assert.Equal(t, tours, got)
}

func TestFilter_ByRegion(t *testing.T) {
	got := catalog.Filter(testCatalog(), models.FilterState{Region: regionPtr(models.RegionEurope)})

	assert.Equal(t, []string{"t1", "t3"}, slugs(got))
}

func TestFilter_UnknownRegionMatchesNothing(t *testing.T) {
	got := catalog.Filter(testCatalog(), models.FilterState{Region: regionPtr("Atlantis")})

	assert.Empty(t, got)
}

func TestFilter_PriceBoundsAreInclusive(t *testing.T) {
	got := catalog.Filter(testCatalog(), models.FilterState{
		MinPrice: intPtr(1200),
		MaxPrice: intPtr(2800),
	})

	assert.Equal(t, []string{"t1", "t3", "t4", "t6"}, slugs(got))
}

func TestFilter_DayBounds(t *testing.T) {
	got := catalog.Filter(testCatalog(), models.FilterState{
		MinDays: intPtr(7),
		MaxDays: intPtr(10),
	})

	assert.Equal(t, []string{"t2", "t3", "t6"}, slugs(got))
}

// Applying a combined filter state must give the same result as applying
// each constraint one after another.
func TestFilter_Composability(t *testing.T) {
	tours := testCatalog()
	combined := models.FilterState{
		Region:   regionPtr(models.RegionEurope),
		MinPrice: intPtr(1000),
		MaxDays:  intPtr(12),
	}

	sequential := catalog.Filter(tours, models.FilterState{Region: combined.Region})
	sequential = catalog.Filter(sequential, models.FilterState{MinPrice: combined.MinPrice})
	sequential = catalog.Filter(sequential, models.FilterState{MaxDays: combined.MaxDays})

	assert.Equal(t, slugs(sequential), slugs(catalog.Filter(tours, combined)))
}

func TestSort_ByName(t *testing.T) {
	got := catalog.Sort(testCatalog(), models.SortByName)

	assert.Equal(t, []string{"t3", "t2", "t4", "t5", "t1", "t6"}, slugs(got))
}

func TestSort_ByPrice(t *testing.T) {
	asc := catalog.Sort(testCatalog(), models.SortByPriceAsc)
	desc := catalog.Sort(testCatalog(), models.SortByPriceDesc)

	assert.Equal(t, []string{"t2", "t1", "t4", "t3", "t6", "t5"}, slugs(asc))
	assert.Equal(t, []string{"t5", "t6", "t3", "t1", "t4", "t2"}, slugs(desc))
}

func TestSort_ByDuration(t *testing.T) {
	asc := catalog.Sort(testCatalog(), models.SortByDurationAsc)

	assert.Equal(t, []string{"t4", "t1", "t2", "t6", "t3", "t5"}, slugs(asc))
}

// Tours with equal sort keys must keep their catalog order.
func TestSort_StableOnEqualKeys(t *testing.T) {
	tours := []*models.Tour{
		makeTour("a", "Zeta", models.RegionEurope, 1000, 5, false),
		makeTour("b", "Alpha", models.RegionAsia, 1000, 5, false),
		makeTour("c", "Mid", models.RegionAfrica, 1000, 5, false),
	}

	byPrice := catalog.Sort(tours, models.SortByPriceAsc)
	byDuration := catalog.Sort(tours, models.SortByDurationDesc)

	assert.Equal(t, []string{"a", "b", "c"}, slugs(byPrice))
	assert.Equal(t, []string{"a", "b", "c"}, slugs(byDuration))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	tours := testCatalog()
	original := slugs(tours)

	catalog.Sort(tours, models.SortByPriceDesc)

	assert.Equal(t, original, slugs(tours))
}

func TestFeatured(t *testing.T) {
	got := catalog.Featured(testCatalog())

	assert.Equal(t, []string{"t1", "t3", "t5"}, slugs(got))
}

func TestByRegion(t *testing.T) {
	got := catalog.ByRegion(testCatalog(), models.RegionAsia)

	assert.Equal(t, []string{"t2", "t4"}, slugs(got))
}

func TestDistinctRegions_FirstAppearanceOrder(t *testing.T) {
	got := catalog.DistinctRegions(testCatalog())

	assert.Equal(t, []models.Region{
		models.RegionEurope,
		models.RegionAsia,
		models.RegionAmericas,
		models.RegionAfrica,
	}, got)
}

func TestPriceRange(t *testing.T) {
	pr, err := catalog.PriceRange(testCatalog())

	assert.NoError(t, err)
	assert.Equal(t, models.PriceRange{Min: 900, Max: 3000}, pr)
}

func TestPriceRange_EmptyCatalog(t *testing.T) {
	_, err := catalog.PriceRange(nil)

	assert.ErrorIs(t, err, pkgerrors.ErrEmptyCatalog)
}

func TestParseFilterState(t *testing.T) {
	params := url.Values{
		"region":   {"Asia"},
		"minPrice": {"500"},
		"maxPrice": {"2000"},
		"minDays":  {"3"},
		"maxDays":  {"10"},
		"sort":     {"price-desc"},
	}

	state := catalog.ParseFilterState(params)

	assert.Equal(t, regionPtr(models.RegionAsia), state.Region)
	assert.Equal(t, intPtr(500), state.MinPrice)
	assert.Equal(t, intPtr(2000), state.MaxPrice)
	assert.Equal(t, intPtr(3), state.MinDays)
	assert.Equal(t, intPtr(10), state.MaxDays)
	assert.Equal(t, models.SortByPriceDesc, state.Sort)
}

// A malformed numeric value drops the bound entirely; the remaining bounds
// still apply.
func TestParseFilterState_MalformedBoundIsDropped(t *testing.T) {
	params := url.Values{
		"minPrice": {"abc"},
		"maxPrice": {"2000"},
	}

	state := catalog.ParseFilterState(params)

	assert.Nil(t, state.MinPrice)
	assert.Equal(t, intPtr(2000), state.MaxPrice)
}

func TestParseFilterState_UnknownSortFallsBackToName(t *testing.T) {
	state := catalog.ParseFilterState(url.Values{"sort": {"rating-desc"}})

	assert.Equal(t, models.SortByName, state.Sort)
}

func TestParseFilterState_Empty(t *testing.T) {
	state := catalog.ParseFilterState(url.Values{})

	assert.True(t, state.IsEmpty())
	assert.Equal(t, models.SortByName, state.Sort)
}

// Rendering a state to query parameters and parsing it back must yield the
// same state.
func TestParseFilterState_RoundTrip(t *testing.T) {
	original := models.FilterState{
		Region:   regionPtr(models.RegionEurope),
		MinPrice: intPtr(800),
		MaxDays:  intPtr(12),
		Sort:     models.SortByDurationAsc,
	}

	params := url.Values{}
	for k, v := range original.Values() {
		params.Set(k, v)
	}

	assert.Equal(t, original, catalog.ParseFilterState(params))
}
