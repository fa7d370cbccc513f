package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaporis/vaporis-site/internal/utils"
)

// csrfContextKey is where echo's CSRF middleware stores the token
const csrfContextKey = "csrf"

// GetSessionID retrieves the visitor session id set by the session middleware
func GetSessionID(c echo.Context) (string, error) {
	id, ok := c.Get(utils.ContextKeySession).(string)
	if !ok || id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Missing session")
	}
	return id, nil
}

// GetCSRFToken returns the CSRF token for the current request, or ""
func GetCSRFToken(c echo.Context) string {
	token, _ := c.Get(csrfContextKey).(string)
	return token
}
