package http

import (
	"net/http"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/service"
	"golang-stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketDataHandler handles HTTP requests for market data.
type MarketDataHandler struct {
	marketDataService service.MarketDataService
	logger            *logger.Logger
}

// NewMarketDataHandler creates a new MarketDataHandler.
func NewMarketDataHandler(marketDataService service.MarketDataService, logger *logger.Logger) *MarketDataHandler {
	return &MarketDataHandler{marketDataService: marketDataService, logger: logger}
}

// RegisterRoutes registers the market data routes to the authenticated
// group.
func (h *MarketDataHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/market-data", h.LatestMarketData)
	g.POST("/market-data", h.CreateMarketData)
}

// LatestMarketData returns the most recent price for the symbol given as a
// query parameter.
func (h *MarketDataHandler) LatestMarketData(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "symbol query parameter is required"})
	}

	data, err := h.marketDataService.Latest(c.Request().Context(), symbol)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, data)
}

// CreateMarketData records a price observation.
func (h *MarketDataHandler) CreateMarketData(c echo.Context) error {
	var req dto.CreateMarketDataRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	data, err := h.marketDataService.Create(c.Request().Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create market data", logger.ErrorField(err))
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, data)
}
