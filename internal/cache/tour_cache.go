package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/traveltours/traveltours-api/internal/models"
	pkgerrors "github.com/traveltours/traveltours-api/pkg/errors"
	"github.com/traveltours/traveltours-api/pkg/logger"
	"github.com/traveltours/traveltours-api/pkg/metrics"
	"go.uber.org/zap"
)

// TourDataSource defines the interface for loading the tour catalog.
type TourDataSource interface {
	LoadTours(ctx context.Context) ([]*models.Tour, error)
}

const (
	tourKeyPrefix = "tour:slug:"
	allToursKey   = "tour:all"
	metadataKey   = "tour:metadata"
)

// Metadata stores cache-wide information
type Metadata struct {
	LoadTime  time.Time
	TourCount int
}

// TourCache holds the in-memory catalog with a slug index. The catalog is
// immutable, so the cache is populated exactly once at startup and entries
// never expire; readers need no further locking after Initialize.
type TourCache struct {
	cache      *gocache.Cache
	dataSource TourDataSource
	mu         sync.RWMutex
	ready      bool
}

// NewTourCache creates a tour cache backed by the given data source.
func NewTourCache(dataSource TourDataSource) *TourCache {
	return &TourCache{
		cache:      gocache.New(gocache.NoExpiration, 0),
		dataSource: dataSource,
	}
}

// Initialize performs the one-time catalog load (synchronous, blocks until
// ready). Must be called during startup before accepting requests.
func (tc *TourCache) Initialize(ctx context.Context) error {
	logger.Info("Initializing tour catalog...")
	startTime := time.Now()

	tours, err := tc.dataSource.LoadTours(ctx)
	if err != nil {
		logger.Error("Failed to load tour catalog", zap.Error(err))
		return err
	}

	slugs := make([]string, 0, len(tours))
	for _, tour := range tours {
		tc.cache.Set(tourKeyPrefix+tour.Slug, tour, gocache.NoExpiration)
		slugs = append(slugs, tour.Slug)
	}
	tc.cache.Set(allToursKey, slugs, gocache.NoExpiration)
	tc.cache.Set(metadataKey, &Metadata{
		LoadTime:  time.Now(),
		TourCount: len(tours),
	}, gocache.NoExpiration)

	metrics.CacheSize.WithLabelValues("tours").Set(float64(len(tours)))

	tc.mu.Lock()
	tc.ready = true
	tc.mu.Unlock()

	logger.Info("Tour catalog initialized",
		zap.Int("count", len(tours)),
		zap.Duration("duration", time.Since(startTime)))

	return nil
}

// IsReady returns true if the catalog has been successfully loaded
func (tc *TourCache) IsReady() bool {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.ready
}

// GetBySlug retrieves a single tour by slug with O(1) complexity. A miss is
// a not-found sentinel, never a fault.
func (tc *TourCache) GetBySlug(slug string) (*models.Tour, error) {
	if !tc.IsReady() {
		return nil, fmt.Errorf("tour catalog not initialized")
	}

	data, found := tc.cache.Get(tourKeyPrefix + slug)
	if !found {
		metrics.CacheMisses.WithLabelValues("tour_by_slug").Inc()
		return nil, pkgerrors.NotFoundError("tour")
	}

	metrics.CacheHits.WithLabelValues("tour_by_slug").Inc()

	tour, ok := data.(*models.Tour)
	if !ok {
		logger.Error("Invalid cache data type", zap.String("slug", slug))
		return nil, pkgerrors.InternalError("invalid cache data")
	}

	return tour, nil
}

// Get retrieves all tours in catalog (insertion) order.
func (tc *TourCache) Get() ([]*models.Tour, error) {
	if !tc.IsReady() {
		return nil, fmt.Errorf("tour catalog not initialized")
	}

	slugsData, found := tc.cache.Get(allToursKey)
	if !found {
		logger.Error("All-tours list missing from cache")
		return nil, pkgerrors.InternalError("catalog index missing")
	}

	slugs, ok := slugsData.([]string)
	if !ok {
		logger.Error("Invalid cache data type for all-tours list")
		return nil, pkgerrors.InternalError("invalid catalog index")
	}

	metrics.CacheHits.WithLabelValues("tour_all").Inc()

	tours := make([]*models.Tour, 0, len(slugs))
	for _, slug := range slugs {
		data, found := tc.cache.Get(tourKeyPrefix + slug)
		if !found {
			// The index and entries are written together, so a gap here
			// means a programming error. Skip rather than fail the request.
			logger.Warn("Tour missing from cache", zap.String("slug", slug))
			continue
		}
		tour, ok := data.(*models.Tour)
		if !ok {
			logger.Warn("Invalid cache data type", zap.String("slug", slug))
			continue
		}
		tours = append(tours, tour)
	}

	return tours, nil
}

// GetMetadata returns cache metadata
func (tc *TourCache) GetMetadata() (*Metadata, error) {
	data, found := tc.cache.Get(metadataKey)
	if !found {
		return nil, fmt.Errorf("metadata not found")
	}

	metadata, ok := data.(*Metadata)
	if !ok {
		return nil, fmt.Errorf("invalid metadata type")
	}

	return metadata, nil
}
