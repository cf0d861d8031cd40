package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cse-motors/dealership/internal/api/session"
)

const loginPath = "/account/login"

// RequireLogin redirects anonymous requests to the login page with a flash
// notice. Requests carrying a valid identity pass through.
func RequireLogin(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				sessions.Flash(c, "Please log in.")
				return c.Redirect(http.StatusFound, loginPath)
			}
			return next(c)
		}
	}
}

// RequireRole restricts a route family to the given roles. Anonymous
// requests and identities outside the set are both redirected to login,
// with messages distinguishing the two cases.
func RequireRole(sessions *session.Manager, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				sessions.Flash(c, "Please log in.")
				return c.Redirect(http.StatusFound, loginPath)
			}
			if _, ok := allowed[id.Role]; !ok {
				sessions.Flash(c, "You do not have permission to access this resource.")
				return c.Redirect(http.StatusFound, loginPath)
			}
			return next(c)
		}
	}
}
