package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/dealership/internal/api/middleware"
	"github.com/cse-motors/dealership/internal/api/session"
	"github.com/cse-motors/dealership/internal/api/view"
	"github.com/cse-motors/dealership/internal/core/ports"
)

// PageBuilder assembles the chrome every rendered view shares: navigation
// from the classification rows, pending flash notices, and the logged-in
// flag. Rendering a page consumes the visitor's flash queue.
type PageBuilder struct {
	inventory ports.InventoryService
	sessions  *session.Manager
	log       zerolog.Logger
}

func NewPageBuilder(inventory ports.InventoryService, sessions *session.Manager, log zerolog.Logger) *PageBuilder {
	return &PageBuilder{inventory: inventory, sessions: sessions, log: log}
}

// Page builds the shared chrome. A failed classification read degrades to
// the bare Home nav rather than failing the page.
func (b *PageBuilder) Page(c echo.Context, title string) view.Page {
	nav := view.NavFallback()
	if classifications, err := b.inventory.Classifications(c.Request().Context()); err != nil {
		b.log.Error().Err(err).Msg("nav classifications unavailable")
	} else {
		nav = view.Nav(classifications)
	}

	_, loggedIn := middleware.IdentityFrom(c)
	return view.Page{
		Title:    title,
		Nav:      nav,
		Notices:  b.sessions.Pop(c),
		LoggedIn: loggedIn,
	}
}
