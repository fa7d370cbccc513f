package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vaporis/vaporis-site/internal/utils"
)

// Session makes sure every visitor carries a session id cookie and stores
// the id in the context under utils.ContextKeySession.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(utils.CookieName); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					c.Set(utils.ContextKeySession, id.String())
					return next(c)
				}
			}

			id := uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     utils.CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   isSecureRequest(c),
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(utils.ContextKeySession, id)

			return next(c)
		}
	}
}
