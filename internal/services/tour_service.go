package services

import (
	"context"
	"strconv"

	"github.com/traveltours/traveltours-api/config"
	"github.com/traveltours/traveltours-api/internal/catalog"
	"github.com/traveltours/traveltours-api/internal/models"
	"github.com/traveltours/traveltours-api/pkg/metrics"
)

// TourService serves catalog queries from the in-memory tour store.
type TourService struct {
	store  TourStore
	config *config.Config
}

func NewTourService(store TourStore, cfg *config.Config) *TourService {
	return &TourService{
		store:  store,
		config: cfg,
	}
}

// ListTours returns the catalog narrowed by the filter state and ordered by
// its sort option.
func (s *TourService) ListTours(ctx context.Context, state models.FilterState) ([]*models.Tour, error) {
	tours, err := s.store.Get()
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(tours, state)
	sorted := catalog.Sort(filtered, state.Sort)

	metrics.CatalogQueries.WithLabelValues(string(state.Sort), strconv.FormatBool(!state.IsEmpty())).Inc()

	return sorted, nil
}

func (s *TourService) GetTourBySlug(ctx context.Context, slug string) (*models.Tour, error) {
	tour, err := s.store.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	metrics.TourDetailViews.WithLabelValues(tour.Slug).Inc()
	return tour, nil
}

func (s *TourService) GetFeaturedTours(ctx context.Context) ([]*models.Tour, error) {
	tours, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	return catalog.Featured(tours), nil
}

func (s *TourService) GetToursByRegion(ctx context.Context, region models.Region) ([]*models.Tour, error) {
	tours, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	return catalog.ByRegion(tours, region), nil
}

// GetRegions returns the distinct regions in catalog order.
func (s *TourService) GetRegions(ctx context.Context) ([]models.Region, error) {
	tours, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	return catalog.DistinctRegions(tours), nil
}

func (s *TourService) GetPriceRange(ctx context.Context) (models.PriceRange, error) {
	tours, err := s.store.Get()
	if err != nil {
		return models.PriceRange{}, err
	}
	return catalog.PriceRange(tours)
}
