package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cse-motors/dealership/internal/core/domain"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	const query = `
		INSERT INTO review (review_text, review_rating, inventory_id, account_id)
		VALUES ($1, $2, $3, $4)
		RETURNING review_id, review_date`

	created := *review
	err := r.db.QueryRowContext(ctx, query,
		review.Text,
		review.Rating,
		review.InventoryID,
		review.AccountID,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return &created, nil
}

// ByInventory lists a vehicle's reviews newest-first with the reviewer's
// name joined in for the byline.
func (r *ReviewRepository) ByInventory(ctx context.Context, inventoryID int) ([]domain.Review, error) {
	const query = `
		SELECT r.review_id, r.review_text, r.review_rating, r.review_date,
		       r.inventory_id, r.account_id, a.account_firstname, a.account_lastname
		FROM review r
		JOIN account a ON r.account_id = a.account_id
		WHERE r.inventory_id = $1
		ORDER BY r.review_date DESC`

	rows, err := r.db.QueryContext(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Text, &rv.Rating, &rv.CreatedAt,
			&rv.InventoryID, &rv.AccountID, &rv.ReviewerFirstName, &rv.ReviewerLastName); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// ByAccount lists an account's reviews newest-first with the vehicle
// identity joined in.
func (r *ReviewRepository) ByAccount(ctx context.Context, accountID int) ([]domain.Review, error) {
	const query = `
		SELECT r.review_id, r.review_text, r.review_rating, r.review_date,
		       r.inventory_id, r.account_id, i.inv_make, i.inv_model, i.inv_year
		FROM review r
		JOIN inventory i ON r.inventory_id = i.inventory_id
		WHERE r.account_id = $1
		ORDER BY r.review_date DESC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list account reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Text, &rv.Rating, &rv.CreatedAt,
			&rv.InventoryID, &rv.AccountID, &rv.VehicleMake, &rv.VehicleModel, &rv.VehicleYear); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) ByID(ctx context.Context, id int) (*domain.Review, error) {
	const query = `
		SELECT review_id, review_text, review_rating, review_date, inventory_id, account_id
		FROM review
		WHERE review_id = $1`

	var rv domain.Review
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rv.ID, &rv.Text, &rv.Rating,
		&rv.CreatedAt, &rv.InventoryID, &rv.AccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &rv, nil
}

func (r *ReviewRepository) Update(ctx context.Context, id int, text string, rating int) error {
	const query = `UPDATE review SET review_text = $1, review_rating = $2 WHERE review_id = $3`
	res, err := r.db.ExecContext(ctx, query, text, rating, id)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return requireRow(res, domain.ErrReviewNotFound)
}

// DeleteOwned deletes keyed by both review id and owner, so a non-owner
// delete affects zero rows and reports false.
func (r *ReviewRepository) DeleteOwned(ctx context.Context, id, accountID int) (bool, error) {
	const query = `DELETE FROM review WHERE review_id = $1 AND account_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, accountID)
	if err != nil {
		return false, fmt.Errorf("delete review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
