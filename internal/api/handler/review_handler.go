package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/dealership/internal/api/forms"
	"github.com/cse-motors/dealership/internal/api/metrics"
	"github.com/cse-motors/dealership/internal/api/middleware"
	"github.com/cse-motors/dealership/internal/api/session"
	"github.com/cse-motors/dealership/internal/api/view"
	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/ports"
)

const myReviewsPath = "/review/my-reviews"

// ReviewHandler implements the review routes. Unlike the account and
// inventory forms, review validation failures redirect with a flash-only
// notice instead of field-level errors.
type ReviewHandler struct {
	reviews  ports.ReviewService
	sessions *session.Manager
	validate *forms.Validator
	pages    *PageBuilder
	log      zerolog.Logger
}

func NewReviewHandler(reviews ports.ReviewService, sessions *session.Manager,
	validate *forms.Validator, pages *PageBuilder, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews:  reviews,
		sessions: sessions,
		validate: validate,
		pages:    pages,
		log:      log,
	}
}

// Add processes a new review and returns to the vehicle detail page either
// way.
func (h *ReviewHandler) Add(c echo.Context) error {
	var form forms.Review
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	forms.Trim(&form.Text)

	detailPath := fmt.Sprintf("/inv/detail/%d", form.InventoryID)

	if h.validate.Check(form) != nil {
		h.sessions.Flash(c, "Please fix the errors in your review.")
		return c.Redirect(http.StatusFound, detailPath)
	}

	id, _ := middleware.IdentityFrom(c)
	if _, err := h.reviews.Add(c.Request().Context(), id.AccountID, form.InventoryID, form.Text, form.Rating); err != nil {
		metrics.ReviewsSubmittedTotal.WithLabelValues("add", "error").Inc()
		h.log.Error().Err(err).Int("inventory_id", form.InventoryID).Msg("add review failed")
		h.sessions.Flash(c, "Sorry, adding the review failed.")
		return c.Redirect(http.StatusFound, detailPath)
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues("add", "success").Inc()
	h.sessions.Flash(c, "Thank you! Your review has been added.")
	return c.Redirect(http.StatusFound, detailPath)
}

// MyReviews lists the logged-in account's reviews.
func (h *ReviewHandler) MyReviews(c echo.Context) error {
	id, _ := middleware.IdentityFrom(c)
	reviews, err := h.reviews.ForAccount(c.Request().Context(), id.AccountID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "review-my-reviews", view.MyReviewsPage{
		Page:    h.pages.Page(c, "My Reviews"),
		Reviews: reviews,
	})
}

// EditForm renders the edit form for a review the account owns. Missing
// reviews and other people's reviews both bounce back to the list.
func (h *ReviewHandler) EditForm(c echo.Context) error {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		return c.Redirect(http.StatusFound, myReviewsPath)
	}

	id, _ := middleware.IdentityFrom(c)
	review, err := h.reviews.GetOwned(c.Request().Context(), reviewID, id.AccountID)
	if err != nil {
		h.sessions.Flash(c, "Review not found or you don't have permission to edit it.")
		return c.Redirect(http.StatusFound, myReviewsPath)
	}

	return c.Render(http.StatusOK, "review-edit", view.EditReviewPage{
		Page:     h.pages.Page(c, "Edit Review"),
		ReviewID: review.ID,
		Text:     review.Text,
		Rating:   review.Rating,
	})
}

// Update processes an edit to an owned review.
func (h *ReviewHandler) Update(c echo.Context) error {
	var form forms.ReviewUpdate
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	forms.Trim(&form.Text)

	if h.validate.Check(form) != nil {
		h.sessions.Flash(c, "Please fix the errors in your review.")
		return c.Redirect(http.StatusFound, fmt.Sprintf("/review/edit/%d", form.ReviewID))
	}

	id, _ := middleware.IdentityFrom(c)
	if err := h.reviews.UpdateOwned(c.Request().Context(), form.ReviewID, id.AccountID, form.Text, form.Rating); err != nil {
		metrics.ReviewsSubmittedTotal.WithLabelValues("update", "error").Inc()
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrReviewNotFound) {
			h.sessions.Flash(c, "You don't have permission to edit this review.")
			return c.Redirect(http.StatusFound, myReviewsPath)
		}
		h.log.Error().Err(err).Int("review_id", form.ReviewID).Msg("update review failed")
		h.sessions.Flash(c, "Sorry, updating the review failed.")
		return c.Render(http.StatusOK, "review-edit", view.EditReviewPage{
			Page:     h.pages.Page(c, "Edit Review"),
			ReviewID: form.ReviewID,
			Text:     form.Text,
			Rating:   form.Rating,
		})
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues("update", "success").Inc()
	h.sessions.Flash(c, "Review updated successfully.")
	return c.Redirect(http.StatusFound, myReviewsPath)
}

// Delete removes an owned review. Deleting a review you do not own removes
// nothing and reports failure; either way you land back on the list.
func (h *ReviewHandler) Delete(c echo.Context) error {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		return c.Redirect(http.StatusFound, myReviewsPath)
	}

	id, _ := middleware.IdentityFrom(c)
	deleted, err := h.reviews.DeleteOwned(c.Request().Context(), reviewID, id.AccountID)
	if err != nil || !deleted {
		metrics.ReviewsSubmittedTotal.WithLabelValues("delete", "error").Inc()
		if err != nil {
			h.log.Error().Err(err).Int("review_id", reviewID).Msg("delete review failed")
		}
		h.sessions.Flash(c, "Sorry, deleting the review failed.")
	} else {
		metrics.ReviewsSubmittedTotal.WithLabelValues("delete", "success").Inc()
		h.sessions.Flash(c, "Review deleted successfully.")
	}
	return c.Redirect(http.StatusFound, myReviewsPath)
}
