package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cse-motors/dealership/internal/api/forms"
	"github.com/cse-motors/dealership/internal/api/middleware"
	"github.com/cse-motors/dealership/internal/api/session"
	"github.com/cse-motors/dealership/internal/api/view"
	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/service"
)

// flashBuffer is an in-memory session.Store for handler tests.
type flashBuffer struct {
	messages map[string][]string
}

func newFlashBuffer() *flashBuffer {
	return &flashBuffer{messages: make(map[string][]string)}
}

func (s *flashBuffer) Append(_ context.Context, sessionID, message string) error {
	s.messages[sessionID] = append(s.messages[sessionID], message)
	return nil
}

func (s *flashBuffer) PopAll(_ context.Context, sessionID string) ([]string, error) {
	out := s.messages[sessionID]
	delete(s.messages, sessionID)
	return out, nil
}

func (s *flashBuffer) all() []string {
	var out []string
	for _, msgs := range s.messages {
		out = append(out, msgs...)
	}
	return out
}

// stubInventoryService provides the classification rows the page chrome
// needs; the write methods are configurable for the inventory tests.
type stubInventoryService struct {
	classifications []domain.Classification
	vehicles        []domain.Vehicle
	vehicle         *domain.Vehicle
	vehicleErr      error
	addClassErr     error
	addVehicleErr   error
}

func (s *stubInventoryService) Classifications(context.Context) ([]domain.Classification, error) {
	return s.classifications, nil
}

func (s *stubInventoryService) VehiclesByClassification(context.Context, int) ([]domain.Vehicle, error) {
	return s.vehicles, nil
}

func (s *stubInventoryService) VehicleByID(context.Context, int) (*domain.Vehicle, error) {
	if s.vehicleErr != nil {
		return nil, s.vehicleErr
	}
	return s.vehicle, nil
}

func (s *stubInventoryService) AddClassification(_ context.Context, name string) (*domain.Classification, error) {
	if s.addClassErr != nil {
		return nil, s.addClassErr
	}
	return &domain.Classification{ID: 9, Name: name}, nil
}

func (s *stubInventoryService) AddVehicle(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if s.addVehicleErr != nil {
		return nil, s.addVehicleErr
	}
	created := *v
	created.ID = 9
	return &created, nil
}

// stubAccountService is a configurable ports.AccountService.
type stubAccountService struct {
	registerErr error
	emailInUse  bool
	authToken   string
	authErr     error
	updateErr   error
	account     *domain.Account
}

func (s *stubAccountService) Register(_ context.Context, firstName, lastName, email, _ string) (*domain.Account, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.Account{ID: 7, FirstName: firstName, LastName: lastName, Email: email, Role: domain.RoleClient}, nil
}

func (s *stubAccountService) Authenticate(context.Context, string, string) (string, *domain.Account, error) {
	if s.authErr != nil {
		return "", nil, s.authErr
	}
	return s.authToken, s.account, nil
}

func (s *stubAccountService) GetByID(context.Context, int) (*domain.Account, error) {
	if s.account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return s.account, nil
}

func (s *stubAccountService) EmailInUse(context.Context, string) (bool, error) {
	return s.emailInUse, nil
}

func (s *stubAccountService) UpdateProfile(_ context.Context, id int, firstName, lastName, email string) (string, *domain.Account, error) {
	if s.updateErr != nil {
		return "", nil, s.updateErr
	}
	return "fresh-token", &domain.Account{ID: id, FirstName: firstName, LastName: lastName, Email: email, Role: domain.RoleClient}, nil
}

func (s *stubAccountService) UpdatePassword(context.Context, int, string) error {
	return s.updateErr
}

type testEnv struct {
	e        *echo.Echo
	store    *flashBuffer
	sessions *session.Manager
	validate *forms.Validator
	pages    *PageBuilder
	tokens   *service.TokenService
}

func newTestEnv() *testEnv {
	e := echo.New()
	e.Renderer = view.NewRenderer()

	store := newFlashBuffer()
	sessions := session.NewManager(store, zerolog.Nop())
	inventory := &stubInventoryService{classifications: []domain.Classification{{ID: 1, Name: "SUV"}}}

	return &testEnv{
		e:        e,
		store:    store,
		sessions: sessions,
		validate: forms.NewValidator(),
		pages:    NewPageBuilder(inventory, sessions, zerolog.Nop()),
		tokens:   service.NewTokenService("secret", time.Hour),
	}
}

func (env *testEnv) postForm(path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return env.e.NewContext(req, rec), rec
}

// asAccount attaches a valid jwt cookie and wraps the handler in the
// identity middleware so the request carries the given identity.
func (env *testEnv) asAccount(t *testing.T, c echo.Context, accountID int, role string) {
	t.Helper()
	token, err := env.tokens.Issue(accountID, role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	c.Request().AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
}

func (env *testEnv) invoke(t *testing.T, c echo.Context, h echo.HandlerFunc) {
	t.Helper()
	if err := middleware.WithIdentity(env.tokens)(h)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func registrationForm() url.Values {
	return url.Values{
		"account_firstname": {"Alice"},
		"account_lastname":  {"Smith"},
		"account_email":     {"alice@example.com"},
		"account_password":  {"Sup3r$ecret123"},
	}
}

func TestAccountHandler_Register_Success(t *testing.T) {
	env := newTestEnv()
	h := NewAccountHandler(&stubAccountService{}, env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	c, rec := env.postForm("/account/register", registrationForm())
	env.invoke(t, c, h.Register)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Congratulations, you&#39;re registered Alice. Please log in.") {
		t.Fatalf("success notice missing from body: %s", rec.Body.String())
	}
}

func TestAccountHandler_Register_WeakPassword(t *testing.T) {
	env := newTestEnv()
	h := NewAccountHandler(&stubAccountService{}, env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	form := registrationForm()
	form.Set("account_password", "weak")
	c, rec := env.postForm("/account/register", form)
	env.invoke(t, c, h.Register)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Password does not meet requirements") {
		t.Fatalf("password error missing: %s", body)
	}
	// Sticky values survive, the password never does.
	if !strings.Contains(body, `value="alice@example.com"`) {
		t.Fatalf("email not sticky: %s", body)
	}
	if strings.Contains(body, "weak") {
		t.Fatalf("password echoed back: %s", body)
	}
}

func TestAccountHandler_Register_EmailTaken(t *testing.T) {
	env := newTestEnv()
	h := NewAccountHandler(&stubAccountService{emailInUse: true}, env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	c, rec := env.postForm("/account/register", registrationForm())
	env.invoke(t, c, h.Register)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email exists. Please log in or use a different email.") {
		t.Fatalf("duplicate email error missing: %s", rec.Body.String())
	}
}

func TestAccountHandler_Register_WriteFailure(t *testing.T) {
	env := newTestEnv()
	h := NewAccountHandler(&stubAccountService{registerErr: context.DeadlineExceeded},
		env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	c, rec := env.postForm("/account/register", registrationForm())
	env.invoke(t, c, h.Register)

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sorry, the registration failed.") {
		t.Fatalf("failure notice missing: %s", rec.Body.String())
	}
}

func TestAccountHandler_Login_BadCredentials(t *testing.T) {
	env := newTestEnv()
	h := NewAccountHandler(&stubAccountService{authErr: domain.ErrInvalidCredentials},
		env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	c, rec := env.postForm("/account/login", url.Values{
		"account_email":    {"alice@example.com"},
		"account_password": {"wrongpassword"},
	})
	env.invoke(t, c, h.Login)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Please check your credentials and try again.") {
		t.Fatalf("credentials notice missing: %s", body)
	}
	if !strings.Contains(body, `value="alice@example.com"`) {
		t.Fatalf("email not sticky: %s", body)
	}
}

func TestAccountHandler_Login_Success(t *testing.T) {
	env := newTestEnv()
	account := &domain.Account{ID: 7, FirstName: "Alice", Role: domain.RoleClient}
	h := NewAccountHandler(&stubAccountService{authToken: "tok123", account: account},
		env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	c, rec := env.postForm("/account/login", url.Values{
		"account_email":    {"alice@example.com"},
		"account_password": {"Sup3r$ecret123"},
	})
	env.invoke(t, c, h.Login)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/account/" {
		t.Fatalf("expected redirect to /account/, got %s", loc)
	}

	var jwtCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookie {
			jwtCookie = cookie
		}
	}
	if jwtCookie == nil || jwtCookie.Value != "tok123" {
		t.Fatalf("jwt cookie not set: %+v", jwtCookie)
	}
	if jwtCookie.MaxAge != env.tokens.TTL() {
		t.Fatalf("cookie max-age %d does not match token ttl %d", jwtCookie.MaxAge, env.tokens.TTL())
	}
	if !jwtCookie.HttpOnly {
		t.Fatalf("jwt cookie must be http-only")
	}
}

func TestAccountHandler_Update_DuplicateEmail(t *testing.T) {
	env := newTestEnv()
	h := NewAccountHandler(&stubAccountService{updateErr: domain.ErrEmailExists},
		env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	c, rec := env.postForm("/account/update", url.Values{
		"account_id":        {"7"},
		"account_firstname": {"Alice"},
		"account_lastname":  {"Smith"},
		"account_email":     {"taken@example.com"},
	})
	env.asAccount(t, c, 7, domain.RoleClient)
	env.invoke(t, c, h.Update)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email exists. Please use a different email.") {
		t.Fatalf("duplicate email error missing: %s", rec.Body.String())
	}
}

func TestAccountHandler_Update_Success(t *testing.T) {
	env := newTestEnv()
	h := NewAccountHandler(&stubAccountService{}, env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	c, rec := env.postForm("/account/update", url.Values{
		"account_id":        {"7"},
		"account_firstname": {"Alice"},
		"account_lastname":  {"Brown"},
		"account_email":     {"alice@example.com"},
	})
	env.asAccount(t, c, 7, domain.RoleClient)
	env.invoke(t, c, h.Update)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}

	// The jwt cookie is re-issued from the updated row.
	reissued := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookie && cookie.Value == "fresh-token" {
			reissued = true
		}
	}
	if !reissued {
		t.Fatalf("jwt cookie not re-issued after profile update")
	}

	msgs := env.store.all()
	if len(msgs) != 1 || msgs[0] != "Account information updated successfully." {
		t.Fatalf("unexpected flash notices: %v", msgs)
	}
}

func TestAccountHandler_Logout(t *testing.T) {
	env := newTestEnv()
	h := NewAccountHandler(&stubAccountService{}, env.tokens, env.sessions, env.validate, env.pages, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/account/logout", nil)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("jwt cookie not cleared on logout")
	}
}
