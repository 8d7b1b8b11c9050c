package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traveltours/traveltours-api/internal/models"
	"github.com/traveltours/traveltours-api/internal/services"
)

type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContactForm accepts an inquiry and maps the pipeline result onto
// HTTP status codes: 400 when field validation failed, 503 when the message
// could not be delivered, 200 otherwise. The response body is always the
// form result itself so the frontend renders the same shape in every case.
func (h *ContactHandler) SubmitContactForm(c *gin.Context) {
	var submission models.ContactSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		attachError(c, err)
		c.JSON(http.StatusBadRequest, models.FormResult{
			Success: false,
			Message: "Please fix the errors below",
			Errors:  map[string][]string{"form": {"Invalid request body"}},
		})
		return
	}

	result := h.service.SubmitContactForm(c.Request.Context(), &submission)

	switch {
	case result.Success:
		c.JSON(http.StatusOK, result)
	case len(result.Errors) > 0:
		c.JSON(http.StatusBadRequest, result)
	default:
		c.JSON(http.StatusServiceUnavailable, result)
	}
}
