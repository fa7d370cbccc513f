package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// CSRFContextKey is where the token for the current request is stored
const CSRFContextKey = "csrf"

// CSRF requires the X-CSRF-Token header on every unsafe request. All site forms
// post through htmx, which copies the token from the csrf-token meta tag.
func CSRF() echo.MiddlewareFunc {
	return echoMiddleware.CSRFWithConfig(echoMiddleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token",
		ContextKey:     CSRFContextKey,
		CookieName:     "csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
	})
}
