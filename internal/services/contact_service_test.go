package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/traveltours/traveltours-api/config"
	"github.com/traveltours/traveltours-api/internal/models"
	"github.com/traveltours/traveltours-api/internal/services"
	pkgerrors "github.com/traveltours/traveltours-api/pkg/errors"
	"github.com/traveltours/traveltours-api/pkg/mailer"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			AppEnv: "development",
		},
		Contact: config.ContactConfig{
			InboxAddress: "inquiries@example.com",
			FromAddress:  "noreply@example.com",
			FromName:     "Travel & Tours",
		},
	}
}

func validSubmission() *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:    "Jane Traveler",
		Email:   "Jane@Example.COM",
		Phone:   "+1 (555) 123-4567",
		Message: "I would like to know more about your tours.",
	}
}

func TestContactService_SubmitContactForm_Success(t *testing.T) {
	mockStore := new(MockTourStore)
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockStore, mockMailer, testConfig())
	ctx := context.Background()

	var sent *mailer.Message
	mockMailer.On("Send", ctx, mock.AnythingOfType("*mailer.Message")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Message) }).
		Return(nil).Once()

	result := service.SubmitContactForm(ctx, validSubmission())

	assert.True(t, result.Success)
	assert.Equal(t, "Thank you for your inquiry! We will contact you within 24 hours.", result.Message)
	assert.Empty(t, result.Errors)

	assert.Equal(t, "inquiries@example.com", sent.To)
	assert.Equal(t, "noreply@example.com", sent.From)
	assert.Equal(t, "New Contact Form Inquiry from Jane Traveler", sent.Subject)
	// Email is lower-cased during normalization and used as Reply-To
	assert.Equal(t, "jane@example.com", sent.ReplyTo)
	assert.Contains(t, sent.Body, "From: Jane Traveler")
	assert.Contains(t, sent.Body, "Email: jane@example.com")
	assert.Contains(t, sent.Body, "Phone: +1 (555) 123-4567")
	assert.Contains(t, sent.Body, "Interested Tour: General Inquiry")
	assert.Contains(t, sent.Body, "I would like to know more about your tours.")

	mockMailer.AssertExpectations(t)
}

func TestContactService_SubmitContactForm_PreferredTourEnrichment(t *testing.T) {
	mockStore := new(MockTourStore)
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockStore, mockMailer, testConfig())
	ctx := context.Background()

	mockStore.On("GetBySlug", "santorini-escape").Return(&models.Tour{
		Slug:  "santorini-escape",
		Name:  "Santorini Escape",
		Price: 1299,
	}, nil).Once()

	var sent *mailer.Message
	mockMailer.On("Send", ctx, mock.AnythingOfType("*mailer.Message")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Message) }).
		Return(nil).Once()

	submission := validSubmission()
	submission.PreferredTour = "santorini-escape"

	result := service.SubmitContactForm(ctx, submission)

	assert.True(t, result.Success)
	assert.Contains(t, sent.Body, "Interested Tour: Santorini Escape - $1,299")

	mockStore.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestContactService_SubmitContactForm_UnknownTourFallsBack(t *testing.T) {
	mockStore := new(MockTourStore)
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockStore, mockMailer, testConfig())
	ctx := context.Background()

	mockStore.On("GetBySlug", "no-such-tour").Return(nil, pkgerrors.ErrNotFound).Once()

	var sent *mailer.Message
	mockMailer.On("Send", ctx, mock.AnythingOfType("*mailer.Message")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Message) }).
		Return(nil).Once()

	submission := validSubmission()
	submission.PreferredTour = "no-such-tour"

	result := service.SubmitContactForm(ctx, submission)

	assert.True(t, result.Success)
	assert.Contains(t, sent.Body, "Interested Tour: General Inquiry")
}

func TestContactService_SubmitContactForm_NoneSentinelMeansGeneralInquiry(t *testing.T) {
	mockStore := new(MockTourStore)
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockStore, mockMailer, testConfig())
	ctx := context.Background()

	var sent *mailer.Message
	mockMailer.On("Send", ctx, mock.AnythingOfType("*mailer.Message")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*mailer.Message) }).
		Return(nil).Once()

	submission := validSubmission()
	submission.PreferredTour = "none"

	result := service.SubmitContactForm(ctx, submission)

	assert.True(t, result.Success)
	assert.Contains(t, sent.Body, "Interested Tour: General Inquiry")
	mockStore.AssertNotCalled(t, "GetBySlug")
}

func TestContactService_SubmitContactForm_ValidationErrors(t *testing.T) {
	mockStore := new(MockTourStore)
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockStore, mockMailer, testConfig())

	submission := &models.ContactSubmission{
		Name:    "Jo", // exactly 2 characters, valid
		Email:   "not-an-email",
		Message: "short",
	}

	result := service.SubmitContactForm(context.Background(), submission)

	assert.False(t, result.Success)
	assert.Equal(t, "Please fix the errors below", result.Message)
	assert.NotContains(t, result.Errors, "name")
	assert.Equal(t, []string{"Please enter a valid email address"}, result.Errors["email"])
	assert.Equal(t, []string{"Message must be at least 10 characters"}, result.Errors["message"])

	mockMailer.AssertNotCalled(t, "Send")
}

func TestContactService_SubmitContactForm_MessageBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		message string
		valid   bool
	}{
		{"nine characters rejected", strings.Repeat("a", 9), false},
		{"ten characters accepted", strings.Repeat("a", 10), true},
		{"thousand characters accepted", strings.Repeat("a", 1000), true},
		{"thousand and one rejected", strings.Repeat("a", 1001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockTourStore)
			mockMailer := new(MockMailer)
			service := services.NewContactService(mockStore, mockMailer, testConfig())

			if tt.valid {
				mockMailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
			}

			submission := validSubmission()
			submission.Message = tt.message

			result := service.SubmitContactForm(context.Background(), submission)

			assert.Equal(t, tt.valid, result.Success)
			if !tt.valid {
				assert.NotEmpty(t, result.Errors["message"])
			}
			mockMailer.AssertExpectations(t)
		})
	}
}

func TestContactService_SubmitContactForm_PhoneRules(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
		want  string
	}{
		{"omitted phone accepted", "", true, ""},
		{"whitespace phone accepted", "   ", true, ""},
		{"full phone accepted", "(555) 123-4567", true, ""},
		{"short phone rejected", "123", false, "Phone number must be at least 10 digits"},
		{"lettered phone rejected", "call-me-maybe", false, "Please enter a valid phone number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockTourStore)
			mockMailer := new(MockMailer)
			service := services.NewContactService(mockStore, mockMailer, testConfig())

			if tt.valid {
				mockMailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
			}

			submission := validSubmission()
			submission.Phone = tt.phone

			result := service.SubmitContactForm(context.Background(), submission)

			assert.Equal(t, tt.valid, result.Success)
			if tt.want != "" {
				assert.Contains(t, result.Errors["phone"], tt.want)
			}
			mockMailer.AssertExpectations(t)
		})
	}
}

func TestContactService_SubmitContactForm_NameTooLong(t *testing.T) {
	mockStore := new(MockTourStore)
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockStore, mockMailer, testConfig())

	submission := validSubmission()
	submission.Name = strings.Repeat("x", 101)

	result := service.SubmitContactForm(context.Background(), submission)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"Name must be less than 100 characters"}, result.Errors["name"])
}

func TestContactService_SubmitContactForm_SendFailureIsContained(t *testing.T) {
	mockStore := new(MockTourStore)
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockStore, mockMailer, testConfig())
	ctx := context.Background()

	mockMailer.On("Send", ctx, mock.Anything).Return(errors.New("dial tcp: connection refused")).Once()

	result := service.SubmitContactForm(ctx, validSubmission())

	assert.False(t, result.Success)
	assert.Equal(t, "We couldn't send your message right now. Please try again in a few moments.", result.Message)
	assert.Empty(t, result.Errors)

	mockMailer.AssertExpectations(t)
}

func TestContactService_SubmitContactForm_PanicIsContained(t *testing.T) {
	mockStore := new(MockTourStore)
	mockMailer := new(MockMailer)
	service := services.NewContactService(mockStore, mockMailer, testConfig())
	ctx := context.Background()

	mockMailer.On("Send", ctx, mock.Anything).
		Run(func(mock.Arguments) { panic("mail transport exploded") }).
		Return(nil).Once()

	result := service.SubmitContactForm(ctx, validSubmission())

	assert.False(t, result.Success)
	assert.Equal(t, "Something went wrong. Please try again later.", result.Message)
}
