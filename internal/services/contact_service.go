package services

import (
	"context"
	"fmt"
	"time"

	"github.com/traveltours/traveltours-api/config"
	"github.com/traveltours/traveltours-api/internal/models"
	"github.com/traveltours/traveltours-api/pkg/logger"
	"github.com/traveltours/traveltours-api/pkg/mailer"
	"github.com/traveltours/traveltours-api/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ContactService handles contact form submissions and inquiry notification email
type ContactService struct {
	store  TourStore
	mailer mailer.Mailer
	config *config.Config
}

// NewContactService creates a new contact service instance
func NewContactService(store TourStore, m mailer.Mailer, cfg *config.Config) *ContactService {
	return &ContactService{
		store:  store,
		mailer: m,
		config: cfg,
	}
}

// pricePrinter renders prices with thousand separators in the email body.
var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// SubmitContactForm validates the submission and emails the inquiry to the
// sales inbox. It always returns a result the frontend can render directly;
// transport and unexpected failures are contained here, never surfaced as
// transport errors to the caller.
func (s *ContactService) SubmitContactForm(ctx context.Context, submission *models.ContactSubmission) (result *models.FormResult) {
	defer func() {
		if r := recover(); r != nil {
			metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
			logger.Error("Contact form panic", zap.Any("panic", r))
			result = &models.FormResult{
				Success: false,
				Message: "Something went wrong. Please try again later.",
			}
		}
	}()

	submission.Normalize()

	if fieldErrors := validateSubmission(submission); fieldErrors != nil {
		metrics.ContactFormSubmissions.WithLabelValues("validation_failed").Inc()
		return &models.FormResult{
			Success: false,
			Message: "Please fix the errors below",
			Errors:  fieldErrors,
		}
	}

	subject := fmt.Sprintf("New Contact Form Inquiry from %s", submission.Name)
	body := s.composeBody(submission, time.Now())

	msg := &mailer.Message{
		From:     s.config.Contact.FromAddress,
		FromName: s.config.Contact.FromName,
		To:       s.config.Contact.InboxAddress,
		Subject:  subject,
		Body:     body,
		ReplyTo:  submission.Email,
	}

	startTime := time.Now()
	err := s.mailer.Send(ctx, msg)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.MailSendDuration.WithLabelValues(status).Observe(time.Since(startTime).Seconds())
	metrics.MailSendTotal.WithLabelValues(status).Inc()

	if err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("send_failed").Inc()
		logger.Error("Contact email delivery failed",
			zap.String("customer_email", submission.Email),
			zap.Error(err))
		return &models.FormResult{
			Success: false,
			Message: "We couldn't send your message right now. Please try again in a few moments.",
		}
	}

	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	logger.Info("Contact form email sent",
		zap.String("customer", submission.Name),
		zap.String("customer_email", submission.Email))

	return &models.FormResult{
		Success: true,
		Message: "Thank you for your inquiry! We will contact you within 24 hours.",
	}
}

// composeBody renders the plain-text inquiry email.
func (s *ContactService) composeBody(submission *models.ContactSubmission, timestamp time.Time) string {
	phone := submission.Phone
	if phone == "" {
		phone = "Not provided"
	}

	return fmt.Sprintf(`From: %s
Email: %s
Phone: %s
Interested Tour: %s

Message:
%s

---
Submitted: %s
(%s)`,
		submission.Name,
		submission.Email,
		phone,
		s.tourInfo(submission.PreferredTour),
		submission.Message,
		timestamp.Format("Monday, January 2, 2006, 3:04 PM MST"),
		timestamp.UTC().Format(time.RFC3339))
}

// tourInfo resolves the preferred tour slug into a readable label. Unknown
// or absent slugs fall back to a general inquiry.
func (s *ContactService) tourInfo(preferredTour string) string {
	if preferredTour == "" {
		return "General Inquiry"
	}

	tour, err := s.store.GetBySlug(preferredTour)
	if err != nil {
		return "General Inquiry"
	}

	return pricePrinter.Sprintf("%s - $%d", tour.Name, tour.Price)
}
