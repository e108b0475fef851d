package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dukapay/dukapay/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware validates the API key for operator endpoints.
// The key is injected from configuration; an empty configured key rejects
// all requests rather than allowing them.
func ValidateAPIKey(configuredKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if configuredKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
