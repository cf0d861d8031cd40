package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cse-motors/dealership/internal/api/metrics"
	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/ports"
)

// TokenCookie is the name of the bearer-token cookie.
const TokenCookie = "jwt"

const identityKey = "identity"

// Identity is the request-scoped identity populated from a valid bearer
// token. It carries only what the token carries; profile fields are loaded
// from the database when needed.
type Identity struct {
	AccountID int
	Role      string
}

// IsStaff reports whether the identity may manage inventory.
func (i Identity) IsStaff() bool {
	return i.Role == domain.RoleEmployee || i.Role == domain.RoleAdmin
}

// WithIdentity verifies the jwt cookie when present and stores the typed
// identity in the request context. A missing or failing token is not an
// error here; downstream gates decide whether anonymity is acceptable.
// An invalid or expired cookie is cleared so the browser stops sending it.
func WithIdentity(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				ClearTokenCookie(c)
				return next(c)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(identityKey, Identity{AccountID: claims.AccountID, Role: claims.Role})
			return next(c)
		}
	}
}

// IdentityFrom returns the identity set by WithIdentity, if any.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// SetTokenCookie attaches a fresh bearer token with a max-age matching the
// token TTL.
func SetTokenCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie expires the bearer token cookie immediately.
func ClearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
