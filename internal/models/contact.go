package models

import "strings"

// ContactSubmission represents a contact form submission. Fields map 1:1 to
// the public form; the record is validated, handed to the mailer, and
// discarded - no submission history is kept.
type ContactSubmission struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,phonechars,min=10"`
	Message       string `json:"message" validate:"required,min=10,max=1000"`
	PreferredTour string `json:"preferredTour" validate:"omitempty,max=200"`
}

// Normalize trims and canonicalizes fields before validation: email is
// lower-cased, a whitespace-only phone counts as "not provided", and the
// form's "none" tour sentinel maps to empty.
func (c *ContactSubmission) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Message = strings.TrimSpace(c.Message)
	c.PreferredTour = strings.TrimSpace(c.PreferredTour)
	if c.PreferredTour == "none" {
		c.PreferredTour = ""
	}
}

// FormResult is the single response shape of the submission pipeline. Every
// path through the pipeline - validation failure, send failure, unexpected
// fault, success - terminates in a FormResult; the pipeline never raises.
type FormResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
