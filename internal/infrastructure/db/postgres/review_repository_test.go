package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/cse-motors/dealership/internal/core/domain"
)

func TestReviewRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO review").
		WithArgs("Great car, smooth ride.", 5, 12, 3).
		WillReturnRows(sqlmock.NewRows([]string{"review_id", "review_date"}).AddRow(1, now))

	repo := NewReviewRepository(db)
	created, err := repo.Create(context.Background(), &domain.Review{
		Text:        "Great car, smooth ride.",
		Rating:      5,
		InventoryID: 12,
		AccountID:   3,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("expected review_date %v, got %v", now, created.CreatedAt)
	}
}

func TestReviewRepository_ByInventory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"review_id", "review_text", "review_rating", "review_date",
		"inventory_id", "account_id", "account_firstname", "account_lastname",
	}).
		AddRow(2, "Newest review text here.", 4, time.Now(), 12, 3, "Alice", "Smith").
		AddRow(1, "Older review text here.", 5, time.Now().Add(-time.Hour), 12, 9, "Bob", "Jones")

	mock.ExpectQuery("SELECT (.+) FROM review r").
		WithArgs(12).
		WillReturnRows(rows)

	repo := NewReviewRepository(db)
	reviews, err := repo.ByInventory(context.Background(), 12)
	if err != nil {
		t.Fatalf("ByInventory returned error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].ReviewerFirstName != "Alice" {
		t.Fatalf("reviewer not joined: %+v", reviews[0])
	}
}

func TestReviewRepository_ByID_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM review").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{
			"review_id", "review_text", "review_rating", "review_date", "inventory_id", "account_id",
		}))

	repo := NewReviewRepository(db)
	if _, err := repo.ByID(context.Background(), 404); err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestReviewRepository_DeleteOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	// Owner delete removes the row.
	mock.ExpectExec("DELETE FROM review").
		WithArgs(1, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Non-owner delete matches nothing.
	mock.ExpectExec("DELETE FROM review").
		WithArgs(1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewReviewRepository(db)

	deleted, err := repo.DeleteOwned(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("DeleteOwned returned error: %v", err)
	}
	if !deleted {
		t.Fatalf("expected owner delete to report true")
	}

	deleted, err = repo.DeleteOwned(context.Background(), 1, 99)
	if err != nil {
		t.Fatalf("DeleteOwned returned error: %v", err)
	}
	if deleted {
		t.Fatalf("expected non-owner delete to report false")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReviewRepository_Update_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE review").
		WithArgs("Edited review text here.", 3, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewReviewRepository(db)
	if err := repo.Update(context.Background(), 404, "Edited review text here.", 3); err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
