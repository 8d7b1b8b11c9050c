package services

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/traveltours/traveltours-api/internal/models"
)

// phonePattern permits digits, whitespace and common separators only.
var phonePattern = regexp.MustCompile(`^[\d\s+()-]+$`)

// contactValidator validates contact submissions. Field names in reported
// errors follow the JSON tags so the frontend can map them onto inputs.
var contactValidator = newContactValidator()

func newContactValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phonechars", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// fieldMessages maps field/tag pairs to the user-facing error strings shown
// under each form input.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Name must be at least 2 characters",
		"min":      "Name must be at least 2 characters",
		"max":      "Name must be less than 100 characters",
	},
	"email": {
		"required": "Please enter a valid email address",
		"email":    "Please enter a valid email address",
	},
	"phone": {
		"phonechars": "Please enter a valid phone number",
		"min":        "Phone number must be at least 10 digits",
	},
	"message": {
		"required": "Message must be at least 10 characters",
		"min":      "Message must be at least 10 characters",
		"max":      "Message must be less than 1000 characters",
	},
	"preferredTour": {
		"max": "Selected tour is not valid",
	},
}

// validateSubmission runs the schema checks and flattens the result into a
// field-keyed error map. A nil map means the submission is valid.
func validateSubmission(submission *models.ContactSubmission) map[string][]string {
	err := contactValidator.Struct(submission)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"form": {"Invalid submission"}}
	}

	fieldErrors := make(map[string][]string)
	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		msg := fieldMessages[field][fieldErr.Tag()]
		if msg == "" {
			msg = "Invalid value"
		}
		fieldErrors[field] = append(fieldErrors[field], msg)
	}

	return fieldErrors
}
