package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cse-motors/dealership/internal/core/domain"
)

// uniqueViolation is the Postgres error code raised when an insert or
// update collides with the account_email unique constraint.
const uniqueViolation = "23505"

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `account_id, account_firstname, account_lastname, account_email, account_password, account_type, created_at`

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	const query = `
		INSERT INTO account (account_firstname, account_lastname, account_email, account_password, account_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING account_id, created_at`

	created := *account
	err := r.db.QueryRowContext(ctx, query,
		account.FirstName,
		account.LastName,
		account.Email,
		account.PasswordHash,
		account.Role,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM account WHERE account_email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *AccountRepository) FindByID(ctx context.Context, id int) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM account WHERE account_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM account WHERE account_email = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, id int, firstName, lastName, email string) error {
	const query = `
		UPDATE account
		SET account_firstname = $1, account_lastname = $2, account_email = $3
		WHERE account_id = $4`

	res, err := r.db.ExecContext(ctx, query, firstName, lastName, email, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	return requireRow(res, domain.ErrAccountNotFound)
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	const query = `UPDATE account SET account_password = $1 WHERE account_id = $2`
	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return requireRow(res, domain.ErrAccountNotFound)
}

func (r *AccountRepository) scanOne(row *sql.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func requireRow(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}
