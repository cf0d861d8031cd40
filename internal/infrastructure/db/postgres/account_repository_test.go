package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cse-motors/dealership/internal/core/domain"
)

func TestAccountRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO account").
		WithArgs("Alice", "Smith", "alice@example.com", "hashed", domain.RoleClient).
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "created_at"}).AddRow(7, now))

	repo := NewAccountRepository(db)
	created, err := repo.Create(context.Background(), &domain.Account{
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Role:         domain.RoleClient,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO account").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	repo := NewAccountRepository(db)
	if _, err := repo.Create(context.Background(), &domain.Account{
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Role:         domain.RoleClient,
	}); err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"account_id", "account_firstname", "account_lastname",
		"account_email", "account_password", "account_type", "created_at",
	}).AddRow(7, "Alice", "Smith", "alice@example.com", "hashed", domain.RoleClient, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM account WHERE account_email").
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	repo := NewAccountRepository(db)
	account, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if account.ID != 7 || account.FirstName != "Alice" {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestAccountRepository_FindByEmail_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM account WHERE account_email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"account_id", "account_firstname", "account_lastname",
			"account_email", "account_password", "account_type", "created_at",
		}))

	repo := NewAccountRepository(db)
	if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_UpdateProfile_NoRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE account").
		WithArgs("Alice", "Smith", "alice@example.com", 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewAccountRepository(db)
	if err := repo.UpdateProfile(context.Background(), 404, "Alice", "Smith", "alice@example.com"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_UpdatePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE account SET account_password").
		WithArgs("newhash", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewAccountRepository(db)
	if err := repo.UpdatePassword(context.Background(), 7, "newhash"); err != nil {
		t.Fatalf("UpdatePassword returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAccountRepository_EmailExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewAccountRepository(db)
	exists, err := repo.EmailExists(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("EmailExists returned error: %v", err)
	}
	if !exists {
		t.Fatalf("expected exists = true")
	}
}
