package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/traveltours/traveltours-api/internal/models"
)

// MockTourService is a mock implementation of services.TourServiceInterface
type MockTourService struct {
	mock.Mock
}

func (m *MockTourService) ListTours(ctx context.Context, state models.FilterState) ([]*models.Tour, error) {
	args := m.Called(ctx, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tour), args.Error(1)
}

func (m *MockTourService) GetTourBySlug(ctx context.Context, slug string) (*models.Tour, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tour), args.Error(1)
}

func (m *MockTourService) GetFeaturedTours(ctx context.Context) ([]*models.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tour), args.Error(1)
}

func (m *MockTourService) GetToursByRegion(ctx context.Context, region models.Region) ([]*models.Tour, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tour), args.Error(1)
}

func (m *MockTourService) GetRegions(ctx context.Context) ([]models.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Region), args.Error(1)
}

func (m *MockTourService) GetPriceRange(ctx context.Context) (models.PriceRange, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.PriceRange), args.Error(1)
}

// MockContactService is a mock implementation of services.ContactServiceInterface
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitContactForm(ctx context.Context, submission *models.ContactSubmission) *models.FormResult {
	args := m.Called(ctx, submission)
	return args.Get(0).(*models.FormResult)
}
