package http

import (
	"net/http"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/service"
	"golang-stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles the unauthenticated routes.
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// RegisterRoutes registers /ping, /register and /login.
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
}

// Ping answers the health check.
func (h *AuthHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Register creates a new user.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	user, err := h.authService.Register(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and returns a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	token, err := h.authService.Login(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, token)
}
