package http

import (
	"net/http"
	"strconv"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/service"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PortfolioHandler handles HTTP requests for portfolios.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
	logger           *logger.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, logger: logger}
}

// RegisterRoutes registers the portfolio routes to the authenticated group.
func (h *PortfolioHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/portfolios", h.ListPortfolios)
	g.POST("/portfolios", h.CreatePortfolio)
	g.PUT("/portfolios/:id", h.UpdatePortfolio)
	g.DELETE("/portfolios/:id", h.DeletePortfolio)
}

// ListPortfolios returns the current user's portfolios.
func (h *PortfolioHandler) ListPortfolios(c echo.Context) error {
	portfolios, err := h.portfolioService.ListByUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		h.logger.Error("Failed to list portfolios", logger.ErrorField(err))
		return respondError(c, err)
	}
	if portfolios == nil {
		portfolios = []entity.Portfolio{}
	}
	return c.JSON(http.StatusOK, portfolios)
}

// CreatePortfolio creates a portfolio owned by the current user.
func (h *PortfolioHandler) CreatePortfolio(c echo.Context) error {
	var req dto.CreatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	portfolio, err := h.portfolioService.Create(c.Request().Context(), currentUserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, portfolio)
}

// UpdatePortfolio partially updates an owned portfolio.
func (h *PortfolioHandler) UpdatePortfolio(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid portfolio ID"})
	}

	var req dto.UpdatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	portfolio, err := h.portfolioService.Update(c.Request().Context(), currentUserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, portfolio)
}

// DeletePortfolio deletes an owned portfolio.
func (h *PortfolioHandler) DeletePortfolio(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid portfolio ID"})
	}

	if err := h.portfolioService.Delete(c.Request().Context(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Portfolio deleted"})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
