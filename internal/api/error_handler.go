package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/dealership/internal/api/handler"
	"github.com/cse-motors/dealership/internal/api/view"
	"github.com/cse-motors/dealership/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the shared HTML error page; nothing crashes the process.
func NewHTTPErrorHandler(pages *handler.PageBuilder, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, title, message := resolveError(err, log, c)
		page := pages.Page(c, title)
		renderErr := c.Render(code, "error", view.ErrorPage{
			Page:    page,
			Message: message,
		})
		if renderErr != nil {
			log.Error().Err(renderErr).Msg("error page render failed")
			_ = c.String(code, message)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (code int, title, message string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return http.StatusNotFound, "404 Not Found", "The page you requested could not be found."
		}
		return he.Code, http.StatusText(he.Code), messageText(he)
	}

	// Known domain errors → deterministic pages.
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound):
		return http.StatusNotFound, "Vehicle Not Found", "Sorry, that vehicle could not be found."
	case errors.Is(err, domain.ErrReviewNotFound):
		return http.StatusNotFound, "Review Not Found", "Sorry, that review could not be found."
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Account Not Found", "Sorry, that account could not be found."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access Forbidden", "You do not have permission to access this resource."
	}

	// Unexpected error: log the real cause, render a generic page.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server Error", "Something went wrong. Please try again later."
}

func messageText(he *echo.HTTPError) string {
	if s, ok := he.Message.(string); ok {
		return s
	}
	return http.StatusText(he.Code)
}
