package ports

import (
	"context"

	"github.com/cse-motors/dealership/internal/core/domain"
)

type ReviewService interface {
	Add(ctx context.Context, accountID, inventoryID int, text string, rating int) (*domain.Review, error)
	ForVehicle(ctx context.Context, inventoryID int) ([]domain.Review, error)
	ForAccount(ctx context.Context, accountID int) ([]domain.Review, error)
	// GetOwned returns the review only when accountID owns it;
	// otherwise ErrReviewNotFound or ErrForbidden.
	GetOwned(ctx context.Context, reviewID, accountID int) (*domain.Review, error)
	UpdateOwned(ctx context.Context, reviewID, accountID int, text string, rating int) error
	// DeleteOwned reports whether a row was actually removed; deleting a
	// review you do not own is a silent no-op.
	DeleteOwned(ctx context.Context, reviewID, accountID int) (bool, error)
}
