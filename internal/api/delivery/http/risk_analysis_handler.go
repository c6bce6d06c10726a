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

// RiskAnalysisHandler handles HTTP requests for risk analyses.
type RiskAnalysisHandler struct {
	riskAnalysisService service.RiskAnalysisService
	logger              *logger.Logger
}

// NewRiskAnalysisHandler creates a new RiskAnalysisHandler.
func NewRiskAnalysisHandler(riskAnalysisService service.RiskAnalysisService, logger *logger.Logger) *RiskAnalysisHandler {
	return &RiskAnalysisHandler{riskAnalysisService: riskAnalysisService, logger: logger}
}

// RegisterRoutes registers the risk analysis routes to the authenticated
// group.
func (h *RiskAnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/risk-analyses", h.ListRiskAnalyses)
	g.POST("/risk-analyses", h.CreateRiskAnalysis)
	g.POST("/risk-analyses/generate", h.GenerateRiskAnalysis)
}

// ListRiskAnalyses returns the current user's risk analyses.
func (h *RiskAnalysisHandler) ListRiskAnalyses(c echo.Context) error {
	analyses, err := h.riskAnalysisService.ListByUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		h.logger.Error("Failed to list risk analyses", logger.ErrorField(err))
		return respondError(c, err)
	}
	if analyses == nil {
		analyses = []entity.RiskAnalysis{}
	}
	return c.JSON(http.StatusOK, analyses)
}

// CreateRiskAnalysis stores a risk analysis for the current user. The score
// is clamped into [0,100] by the service.
func (h *RiskAnalysisHandler) CreateRiskAnalysis(c echo.Context) error {
	var req dto.CreateRiskAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	analysis, err := h.riskAnalysisService.Create(c.Request().Context(), currentUserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, analysis)
}

// GenerateRiskAnalysis runs the risk heuristic against the generator and
// stores the assessment. A generator outage degrades to an explicit
// payload, not a 5xx.
func (h *RiskAnalysisHandler) GenerateRiskAnalysis(c echo.Context) error {
	var req dto.GenerateRiskAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	analysis, err := h.riskAnalysisService.Generate(c.Request().Context(), currentUserID(c), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUpstreamUnavailable) {
			return c.JSON(http.StatusOK, echo.Map{
				"error":  err.Error(),
				"detail": "text generation unavailable",
			})
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, analysis)
}
