package services

import (
	"context"

	"github.com/traveltours/traveltours-api/internal/models"
)

// TourStore abstracts the catalog cache for the services layer.
type TourStore interface {
	Get() ([]*models.Tour, error)
	GetBySlug(slug string) (*models.Tour, error)
	IsReady() bool
}

// TourServiceInterface defines the interface for tour catalog operations
type TourServiceInterface interface {
	ListTours(ctx context.Context, state models.FilterState) ([]*models.Tour, error)
	GetTourBySlug(ctx context.Context, slug string) (*models.Tour, error)
	GetFeaturedTours(ctx context.Context) ([]*models.Tour, error)
	GetToursByRegion(ctx context.Context, region models.Region) ([]*models.Tour, error)
	GetRegions(ctx context.Context) ([]models.Region, error)
	GetPriceRange(ctx context.Context) (models.PriceRange, error)
}

// ContactServiceInterface defines the interface for contact form operations
type ContactServiceInterface interface {
	SubmitContactForm(ctx context.Context, submission *models.ContactSubmission) *models.FormResult
}

// Ensure services implement their interfaces
var _ TourServiceInterface = (*TourService)(nil)
var _ ContactServiceInterface = (*ContactService)(nil)
