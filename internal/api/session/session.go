// Package session manages the anonymous session cookie that scopes flash
// notices. It carries no identity; authentication lives in the jwt cookie.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const cookieName = "sid"

// Store is the backing buffer for one-time notices.
type Store interface {
	Append(ctx context.Context, sessionID, message string) error
	PopAll(ctx context.Context, sessionID string) ([]string, error)
}

// Manager ties the session cookie to the flash store. Flash delivery is
// best-effort: a store failure drops the notice and logs, never fails the
// request.
type Manager struct {
	store Store
	log   zerolog.Logger
}

func NewManager(store Store, log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Flash queues a notice to show on the next rendered page.
func (m *Manager) Flash(c echo.Context, message string) {
	if err := m.store.Append(c.Request().Context(), m.sessionID(c), message); err != nil {
		m.log.Warn().Err(err).Msg("flash notice dropped")
	}
}

// Pop returns and clears the queued notices for this visitor.
func (m *Manager) Pop(c echo.Context) []string {
	notices, err := m.store.PopAll(c.Request().Context(), m.sessionID(c))
	if err != nil {
		m.log.Warn().Err(err).Msg("flash read failed")
		return nil
	}
	return notices
}

// sessionID returns the visitor's session id, minting the cookie on first
// contact. The minted id is cached on the request context so a Flash and a
// Pop within the same request agree on the id.
func (m *Manager) sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if id, ok := c.Get(cookieName).(string); ok && id != "" {
		return id
	}

	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	id := hex.EncodeToString(buf)

	c.Set(cookieName, id)
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
