package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cse-motors/dealership/internal/api/forms"
	"github.com/cse-motors/dealership/internal/api/metrics"
	"github.com/cse-motors/dealership/internal/api/middleware"
	"github.com/cse-motors/dealership/internal/api/session"
	"github.com/cse-motors/dealership/internal/api/view"
	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/ports"
)

type AccountHandler struct {
	accounts ports.AccountService
	tokens   ports.TokenService
	sessions *session.Manager
	validate *forms.Validator
	pages    *PageBuilder
	log      zerolog.Logger
}

func NewAccountHandler(accounts ports.AccountService, tokens ports.TokenService,
	sessions *session.Manager, validate *forms.Validator, pages *PageBuilder, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		tokens:   tokens,
		sessions: sessions,
		validate: validate,
		pages:    pages,
		log:      log,
	}
}

// BuildLogin renders the login form.
func (h *AccountHandler) BuildLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "account-login", view.LoginPage{
		Page: h.pages.Page(c, "Login"),
	})
}

// BuildRegister renders the registration form.
func (h *AccountHandler) BuildRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "account-register", view.RegisterPage{
		Page: h.pages.Page(c, "Register"),
	})
}

// Register processes a registration submission. Validation failures
// re-render the form with field errors and sticky values (minus the
// password); success renders the login view with a 201.
func (h *AccountHandler) Register(c echo.Context) error {
	var form forms.Registration
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	forms.Trim(&form.FirstName, &form.LastName, &form.Email)

	fieldErrors := h.validate.Check(form)
	if fieldErrors == nil {
		if exists, err := h.accounts.EmailInUse(c.Request().Context(), form.Email); err != nil {
			return fmt.Errorf("check email: %w", err)
		} else if exists {
			fieldErrors = map[string]string{
				"account_email": "Email exists. Please log in or use a different email.",
			}
		}
	}
	if fieldErrors != nil {
		return h.renderRegister(c, http.StatusOK, form, fieldErrors)
	}

	_, err := h.accounts.Register(c.Request().Context(), form.FirstName, form.LastName, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrPasswordTooLong):
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			h.sessions.Flash(c, "Sorry, there was an error processing the registration.")
			return h.renderRegister(c, http.StatusInternalServerError, form, nil)
		case errors.Is(err, domain.ErrEmailExists):
			metrics.RegistrationsTotal.WithLabelValues("duplicate_email").Inc()
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			h.log.Error().Err(err).Msg("registration failed")
		}
		h.sessions.Flash(c, "Sorry, the registration failed.")
		return h.renderRegister(c, http.StatusNotImplemented, form, nil)
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	h.sessions.Flash(c, fmt.Sprintf("Congratulations, you're registered %s. Please log in.", form.FirstName))
	return c.Render(http.StatusCreated, "account-login", view.LoginPage{
		Page: h.pages.Page(c, "Login"),
	})
}

func (h *AccountHandler) renderRegister(c echo.Context, status int, form forms.Registration, fieldErrors map[string]string) error {
	page := h.pages.Page(c, "Registration")
	page.Errors = fieldErrors
	return c.Render(status, "account-register", view.RegisterPage{
		Page:      page,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	})
}

// Login processes a login attempt. Success sets the jwt cookie and
// redirects to account management; bad credentials re-render the form with
// a 400 and the email kept sticky.
func (h *AccountHandler) Login(c echo.Context) error {
	var form forms.Login
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	forms.Trim(&form.Email)

	if fieldErrors := h.validate.Check(form); fieldErrors != nil {
		return h.renderLogin(c, http.StatusOK, form.Email, fieldErrors)
	}

	token, _, err := h.accounts.Authenticate(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("bad_credentials").Inc()
			h.sessions.Flash(c, "Please check your credentials and try again.")
			return h.renderLogin(c, http.StatusBadRequest, form.Email, nil)
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("login failed")
		h.sessions.Flash(c, "Access Forbidden")
		return h.renderLogin(c, http.StatusInternalServerError, form.Email, nil)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	middleware.SetTokenCookie(c, token, h.tokens.TTL())
	return c.Redirect(http.StatusFound, "/account/")
}

func (h *AccountHandler) renderLogin(c echo.Context, status int, email string, fieldErrors map[string]string) error {
	page := h.pages.Page(c, "Login")
	page.Errors = fieldErrors
	return c.Render(status, "account-login", view.LoginPage{
		Page:  page,
		Email: email,
	})
}

// Management renders the account management view for the logged-in account.
func (h *AccountHandler) Management(c echo.Context) error {
	id, _ := middleware.IdentityFrom(c)
	account, err := h.accounts.GetByID(c.Request().Context(), id.AccountID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "account-management", view.ManagementPage{
		Page:    h.pages.Page(c, "Account Management"),
		Account: account,
	})
}

// BuildUpdate renders the account update form populated from the stored row.
func (h *AccountHandler) BuildUpdate(c echo.Context) error {
	accountID, err := strconv.Atoi(c.Param("account_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}

	account, err := h.accounts.GetByID(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "account-update", view.AccountUpdatePage{
		Page:      h.pages.Page(c, "Edit Account"),
		AccountID: account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
	})
}

// Update processes a profile edit. On success the jwt cookie is re-issued
// so the token's identity stays in sync with the stored row.
func (h *AccountHandler) Update(c echo.Context) error {
	var form forms.AccountUpdate
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	forms.Trim(&form.FirstName, &form.LastName, &form.Email)

	if fieldErrors := h.validate.Check(form); fieldErrors != nil {
		return h.renderUpdate(c, http.StatusOK, form, fieldErrors)
	}

	token, _, err := h.accounts.UpdateProfile(c.Request().Context(), form.AccountID, form.FirstName, form.LastName, form.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return h.renderUpdate(c, http.StatusOK, form, map[string]string{
				"account_email": "Email exists. Please use a different email.",
			})
		}
		h.log.Error().Err(err).Int("account_id", form.AccountID).Msg("account update failed")
		h.sessions.Flash(c, "Sorry, the update failed.")
		return h.renderUpdate(c, http.StatusNotImplemented, form, nil)
	}

	middleware.SetTokenCookie(c, token, h.tokens.TTL())
	h.sessions.Flash(c, "Account information updated successfully.")
	return c.Redirect(http.StatusFound, "/account/")
}

func (h *AccountHandler) renderUpdate(c echo.Context, status int, form forms.AccountUpdate, fieldErrors map[string]string) error {
	page := h.pages.Page(c, "Edit Account")
	page.Errors = fieldErrors
	return c.Render(status, "account-update", view.AccountUpdatePage{
		Page:      page,
		AccountID: form.AccountID,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	})
}

// UpdatePassword processes a password change. Failure re-renders the update
// view from the stored account row, never echoing the submitted password.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	var form forms.PasswordUpdate
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	if fieldErrors := h.validate.Check(form); fieldErrors != nil {
		return h.renderUpdateFromStored(c, http.StatusOK, form.AccountID, fieldErrors)
	}

	if err := h.accounts.UpdatePassword(c.Request().Context(), form.AccountID, form.Password); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			h.sessions.Flash(c, "Sorry, there was an error processing the password change.")
			return h.renderUpdateFromStored(c, http.StatusInternalServerError, form.AccountID, nil)
		}
		h.log.Error().Err(err).Int("account_id", form.AccountID).Msg("password update failed")
		h.sessions.Flash(c, "Sorry, the password update failed.")
		return h.renderUpdateFromStored(c, http.StatusNotImplemented, form.AccountID, nil)
	}

	h.sessions.Flash(c, "Password updated successfully.")
	return c.Redirect(http.StatusFound, "/account/")
}

func (h *AccountHandler) renderUpdateFromStored(c echo.Context, status int, accountID int, fieldErrors map[string]string) error {
	account, err := h.accounts.GetByID(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	page := h.pages.Page(c, "Edit Account")
	page.Errors = fieldErrors
	return c.Render(status, "account-update", view.AccountUpdatePage{
		Page:      page,
		AccountID: account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
	})
}

// Logout clears the jwt cookie and returns to the home page.
func (h *AccountHandler) Logout(c echo.Context) error {
	middleware.ClearTokenCookie(c)
	return c.Redirect(http.StatusFound, "/")
}
