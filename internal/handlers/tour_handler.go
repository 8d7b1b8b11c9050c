package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traveltours/traveltours-api/config"
	"github.com/traveltours/traveltours-api/internal/catalog"
	"github.com/traveltours/traveltours-api/internal/models"
	"github.com/traveltours/traveltours-api/internal/services"
	pkgerrors "github.com/traveltours/traveltours-api/pkg/errors"
)

type TourHandler struct {
	service services.TourServiceInterface
	baseURL string
}

func NewTourHandler(service services.TourServiceInterface, cfg *config.Config) *TourHandler {
	return &TourHandler{
		service: service,
		baseURL: cfg.Server.BaseURL,
	}
}

// ListTours returns the catalog filtered and sorted per the query string.
// Malformed numeric bounds and unknown sort values are tolerated, not
// rejected; the parser degrades them instead.
func (h *TourHandler) ListTours(c *gin.Context) {
	state := catalog.ParseFilterState(c.Request.URL.Query())

	tours, err := h.service.ListTours(c.Request.Context(), state)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch tours", err)
		return
	}

	publicTours := make([]models.PublicTourResponse, 0, len(tours))
	for _, tour := range tours {
		publicTours = append(publicTours, tour.ToPublicResponse(h.baseURL))
	}

	c.JSON(http.StatusOK, gin.H{
		"tours":   publicTours,
		"total":   len(publicTours),
		"filters": state,
	})
}

func (h *TourHandler) GetFeaturedTours(c *gin.Context) {
	tours, err := h.service.GetFeaturedTours(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch tours", err)
		return
	}

	publicTours := make([]models.PublicTourResponse, 0, len(tours))
	for _, tour := range tours {
		publicTours = append(publicTours, tour.ToPublicResponse(h.baseURL))
	}

	c.JSON(http.StatusOK, gin.H{"tours": publicTours})
}

func (h *TourHandler) GetTourBySlug(c *gin.Context) {
	slug := c.Param("slug")

	tour, err := h.service.GetTourBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Tour not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch tour", err)
		return
	}

	c.JSON(http.StatusOK, tour)
}

// GetCatalogMeta returns the data the listing page needs to render its
// filter controls: the regions present in the catalog and the price range.
func (h *TourHandler) GetCatalogMeta(c *gin.Context) {
	ctx := c.Request.Context()

	regions, err := h.service.GetRegions(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch catalog metadata", err)
		return
	}

	priceRange, err := h.service.GetPriceRange(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch catalog metadata", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"regions":    regions,
		"priceRange": priceRange,
		"sortOptions": []models.SortOption{
			models.SortByName,
			models.SortByPriceAsc,
			models.SortByPriceDesc,
			models.SortByDurationAsc,
			models.SortByDurationDesc,
		},
	})
}
