package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cse-motors/dealership/internal/api/view"
)

type HomeHandler struct {
	pages *PageBuilder
}

func NewHomeHandler(pages *PageBuilder) *HomeHandler {
	return &HomeHandler{pages: pages}
}

// Index renders the landing page.
func (h *HomeHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "home", view.HomePage{
		Page: h.pages.Page(c, "CSE Motors - Home"),
	})
}
