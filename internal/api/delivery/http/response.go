package http

import (
	"net/http"

	"golang-stock-advisor/pkg/apperrors"

	"github.com/labstack/echo/v4"
)

// respondError maps a service error onto the HTTP taxonomy. Uncategorized
// errors are relational-store failures and answer 503; upstream outages are
// handled per route before reaching here.
func respondError(c echo.Context, err error) error {
	switch {
	case apperrors.Is(err, apperrors.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	case apperrors.Is(err, apperrors.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Unauthorized"})
	case apperrors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
	case apperrors.Is(err, apperrors.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "Storage unavailable"})
	}
}
