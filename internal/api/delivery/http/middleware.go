package http

import (
	"fmt"
	"net/http"
	"strings"

	"golang-stock-advisor/pkg/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth returns middleware that validates the bearer token and stores the
// authenticated user id in the request context. Every failure mode answers
// 401 with a JSON body.
func JWTAuth(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authorization header required"})
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authorization header must use the Bearer scheme"})
			}
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secretBytes, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired token"})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token claims"})
			}

			rawUserID, ok := claims["user_id"].(float64)
			if !ok || rawUserID <= 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token claims"})
			}

			c.Set(common.ContextKeyUserID, uint(rawUserID))
			return next(c)
		}
	}
}

// currentUserID reads the authenticated user id the middleware stored.
func currentUserID(c echo.Context) uint {
	userID, _ := c.Get(common.ContextKeyUserID).(uint)
	return userID
}
