package http

import (
	"encoding/json"
	"net/http"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/service"
	"golang-stock-advisor/pkg/apperrors"
	"golang-stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// VectorHandler handles HTTP requests against the vector collections. An
// unreachable vector service degrades every route to an explicit payload;
// it never produces a 5xx.
type VectorHandler struct {
	vectorService service.VectorService
	logger        *logger.Logger
}

// NewVectorHandler creates a new VectorHandler.
func NewVectorHandler(vectorService service.VectorService, logger *logger.Logger) *VectorHandler {
	return &VectorHandler{vectorService: vectorService, logger: logger}
}

// RegisterRoutes registers the vector routes to the authenticated group.
func (h *VectorHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/vector/news", h.SearchNews)
	g.POST("/vector/news", h.AddNews)
	g.GET("/vector/conversations", h.ConversationHistory)
	g.POST("/vector/conversations", h.AddConversation)
	g.GET("/vector/recommendations", h.SearchRecommendations)
	g.POST("/vector/recommendations", h.AddRecommendation)
}

// AddNews inserts a news article with a caller-supplied embedding.
func (h *VectorHandler) AddNews(c echo.Context) error {
	var req dto.AddNewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.vectorService.AddNews(c.Request().Context(), &req); err != nil {
		return h.respondWriteFailure(c, err)
	}
	return c.JSON(http.StatusCreated, dto.VectorWriteResponse{Success: true, Message: "News added"})
}

// SearchNews returns the nearest news articles to the query vector.
func (h *VectorHandler) SearchNews(c echo.Context) error {
	vector, err := queryVector(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No vector query provided"})
	}

	results, err := h.vectorService.SearchNews(c.Request().Context(), vector)
	if err != nil {
		return h.respondSearchFailure(c, err, dto.VectorSearchResponse[dto.NewsRecord]{
			Results:     []dto.NewsRecord{},
			Unavailable: true,
			Detail:      "vector service unavailable",
		})
	}
	if results == nil {
		results = []dto.NewsRecord{}
	}
	return c.JSON(http.StatusOK, dto.VectorSearchResponse[dto.NewsRecord]{Results: results})
}

// AddConversation stores a conversation message for the current user.
func (h *VectorHandler) AddConversation(c echo.Context) error {
	var req dto.AddConversationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.vectorService.AddConversation(c.Request().Context(), currentUserID(c), &req); err != nil {
		return h.respondWriteFailure(c, err)
	}
	return c.JSON(http.StatusCreated, dto.VectorWriteResponse{Success: true, Message: "Conversation saved"})
}

// ConversationHistory returns the current user's stored messages.
func (h *VectorHandler) ConversationHistory(c echo.Context) error {
	results, err := h.vectorService.ConversationHistory(c.Request().Context(), currentUserID(c))
	if err != nil {
		return h.respondSearchFailure(c, err, dto.VectorSearchResponse[dto.ConversationRecord]{
			Results:     []dto.ConversationRecord{},
			Unavailable: true,
			Detail:      "vector service unavailable",
		})
	}
	if results == nil {
		results = []dto.ConversationRecord{}
	}
	return c.JSON(http.StatusOK, dto.VectorSearchResponse[dto.ConversationRecord]{Results: results})
}

// AddRecommendation stores a recommendation for the current user.
func (h *VectorHandler) AddRecommendation(c echo.Context) error {
	var req dto.AddVectorRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	if err := h.vectorService.AddRecommendation(c.Request().Context(), currentUserID(c), &req); err != nil {
		return h.respondWriteFailure(c, err)
	}
	return c.JSON(http.StatusCreated, dto.VectorWriteResponse{Success: true, Message: "Recommendation saved"})
}

// SearchRecommendations returns the current user's nearest recommendations
// to the query vector.
func (h *VectorHandler) SearchRecommendations(c echo.Context) error {
	vector, err := queryVector(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No vector query provided"})
	}

	results, err := h.vectorService.SearchRecommendations(c.Request().Context(), currentUserID(c), vector)
	if err != nil {
		return h.respondSearchFailure(c, err, dto.VectorSearchResponse[dto.RecommendationRecord]{
			Results:     []dto.RecommendationRecord{},
			Unavailable: true,
			Detail:      "vector service unavailable",
		})
	}
	if results == nil {
		results = []dto.RecommendationRecord{}
	}
	return c.JSON(http.StatusOK, dto.VectorSearchResponse[dto.RecommendationRecord]{Results: results})
}

func (h *VectorHandler) respondWriteFailure(c echo.Context, err error) error {
	if apperrors.Is(err, apperrors.ErrUpstreamUnavailable) {
		h.logger.Warn("Vector write degraded", logger.ErrorField(err))
		return c.JSON(http.StatusOK, dto.VectorWriteResponse{Success: false, Detail: "vector service unavailable"})
	}
	return respondError(c, err)
}

func (h *VectorHandler) respondSearchFailure(c echo.Context, err error, degraded interface{}) error {
	if apperrors.Is(err, apperrors.ErrUpstreamUnavailable) {
		h.logger.Warn("Vector search degraded", logger.ErrorField(err))
		return c.JSON(http.StatusOK, degraded)
	}
	return respondError(c, err)
}

// queryVector parses the JSON-encoded embedding from the vector query
// parameter.
func queryVector(c echo.Context) ([]float32, error) {
	param := c.QueryParam("vector")
	if param == "" {
		return nil, apperrors.Validationf("vector query parameter is required")
	}
	var vector []float32
	if err := json.Unmarshal([]byte(param), &vector); err != nil {
		return nil, apperrors.Validationf("vector must be a JSON array of numbers")
	}
	if len(vector) == 0 {
		return nil, apperrors.Validationf("vector must not be empty")
	}
	return vector, nil
}
