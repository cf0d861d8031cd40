package ports

import (
	"context"

	"github.com/cse-motors/dealership/internal/core/domain"
)

// ReviewRepository defines the persistence interface for vehicle reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ByInventory(ctx context.Context, inventoryID int) ([]domain.Review, error)
	ByAccount(ctx context.Context, accountID int) ([]domain.Review, error)
	ByID(ctx context.Context, id int) (*domain.Review, error)
	Update(ctx context.Context, id int, text string, rating int) error
	// DeleteOwned removes the review only when accountID owns it and
	// reports whether a row was deleted.
	DeleteOwned(ctx context.Context, id, accountID int) (bool, error)
}
