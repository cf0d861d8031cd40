package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/ports"
)

// AccountService implements registration, login, and profile maintenance.
type AccountService struct {
	repo   ports.AccountRepository
	tokens ports.TokenService
}

func NewAccountService(repo ports.AccountRepository, tokens ports.TokenService) *AccountService {
	return &AccountService{repo: repo, tokens: tokens}
}

// Register hashes the password and stores a new Client account. The
// plaintext never leaves this function.
func (s *AccountService) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}
	return s.repo.Create(ctx, account)
}

// Authenticate verifies the credentials and returns a signed bearer token
// alongside the account. Unknown email and wrong password both collapse to
// ErrInvalidCredentials so the login form cannot be used to probe accounts.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (string, *domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, account, nil
}

func (s *AccountService) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) EmailInUse(ctx context.Context, email string) (bool, error) {
	return s.repo.EmailExists(ctx, email)
}

// UpdateProfile writes the new profile fields and re-issues the bearer
// token from the stored row so the cookie expiry restarts. A duplicate
// email is only rejected when the address actually changed.
func (s *AccountService) UpdateProfile(ctx context.Context, id int, firstName, lastName, email string) (string, *domain.Account, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	if email != current.Email {
		exists, err := s.repo.EmailExists(ctx, email)
		if err != nil {
			return "", nil, err
		}
		if exists {
			return "", nil, domain.ErrEmailExists
		}
	}

	if err := s.repo.UpdateProfile(ctx, id, firstName, lastName, email); err != nil {
		return "", nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(updated.ID, updated.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, updated, nil
}

func (s *AccountService) UpdatePassword(ctx context.Context, id int, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}
