package ports

import (
	"context"

	"github.com/cse-motors/dealership/internal/core/domain"
)

// AccountRepository defines the persistence interface for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id int) (*domain.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int, firstName, lastName, email string) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}
