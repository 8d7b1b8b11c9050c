package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/traveltours/traveltours-api/internal/models"
	"github.com/traveltours/traveltours-api/pkg/mailer"
)

// MockTourStore is a mock implementation of the TourStore interface
type MockTourStore struct {
	mock.Mock
}

func (m *MockTourStore) Get() ([]*models.Tour, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tour), args.Error(1)
}

func (m *MockTourStore) GetBySlug(slug string) (*models.Tour, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tour), args.Error(1)
}

func (m *MockTourStore) IsReady() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockMailer is a mock implementation of the mailer.Mailer interface
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg *mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
