package http

import (
	"net/http"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/service"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/apperrors"
	"golang-stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RecommendationHandler handles HTTP requests for recommendations.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
	logger                *logger.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService, logger *logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService, logger: logger}
}

// RegisterRoutes registers the recommendation routes to the authenticated
// group.
func (h *RecommendationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/recommendations", h.ListRecommendations)
	g.POST("/recommendations", h.CreateRecommendation)
	g.POST("/recommendations/generate", h.GenerateRecommendation)
}

// ListRecommendations returns the current user's recommendations.
func (h *RecommendationHandler) ListRecommendations(c echo.Context) error {
	recommendations, err := h.recommendationService.ListByUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		h.logger.Error("Failed to list recommendations", logger.ErrorField(err))
		return respondError(c, err)
	}
	if recommendations == nil {
		recommendations = []entity.Recommendation{}
	}
	return c.JSON(http.StatusOK, recommendations)
}

// CreateRecommendation stores a recommendation for the current user.
func (h *RecommendationHandler) CreateRecommendation(c echo.Context) error {
	var req dto.CreateRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	recommendation, err := h.recommendationService.Create(c.Request().Context(), currentUserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, recommendation)
}

// GenerateRecommendation asks the text generator for advice and stores the
// result. A generator outage degrades to an explicit payload, not a 5xx.
func (h *RecommendationHandler) GenerateRecommendation(c echo.Context) error {
	var req dto.GenerateRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	recommendation, err := h.recommendationService.Generate(c.Request().Context(), currentUserID(c), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUpstreamUnavailable) {
			return c.JSON(http.StatusOK, echo.Map{
				"error":  err.Error(),
				"detail": "text generation unavailable",
			})
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, recommendation)
}
