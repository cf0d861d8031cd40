package ports

import (
	"context"

	"github.com/cse-motors/dealership/internal/core/domain"
)

type AccountService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*domain.Account, error)
	// Authenticate verifies credentials and returns a signed bearer token
	// alongside the account.
	Authenticate(ctx context.Context, email, password string) (string, *domain.Account, error)
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
	// UpdateProfile persists the new profile fields and re-issues the
	// bearer token so the embedded role/expiry stay in sync.
	UpdateProfile(ctx context.Context, id int, firstName, lastName, email string) (string, *domain.Account, error)
	UpdatePassword(ctx context.Context, id int, password string) error
}

// TokenService issues and verifies the signed bearer tokens carried in the
// jwt cookie.
type TokenService interface {
	Issue(accountID int, role string) (string, error)
	Verify(token string) (domain.Claims, error)
	// TTL is the token lifetime, shared with the cookie max-age.
	TTL() int
}
