package service

import (
	"context"

	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/ports"
)

// ReviewService implements review CRUD with ownership enforcement.
type ReviewService struct {
	repo ports.ReviewRepository
}

func NewReviewService(repo ports.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) Add(ctx context.Context, accountID, inventoryID int, text string, rating int) (*domain.Review, error) {
	review := &domain.Review{
		Text:        text,
		Rating:      rating,
		InventoryID: inventoryID,
		AccountID:   accountID,
	}
	return s.repo.Create(ctx, review)
}

func (s *ReviewService) ForVehicle(ctx context.Context, inventoryID int) ([]domain.Review, error) {
	return s.repo.ByInventory(ctx, inventoryID)
}

func (s *ReviewService) ForAccount(ctx context.Context, accountID int) ([]domain.Review, error) {
	return s.repo.ByAccount(ctx, accountID)
}

// GetOwned loads a review and checks ownership. Non-owners get
// ErrForbidden; a missing review is ErrReviewNotFound.
func (s *ReviewService) GetOwned(ctx context.Context, reviewID, accountID int) (*domain.Review, error) {
	review, err := s.repo.ByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	return review, nil
}

func (s *ReviewService) UpdateOwned(ctx context.Context, reviewID, accountID int, text string, rating int) error {
	if _, err := s.GetOwned(ctx, reviewID, accountID); err != nil {
		return err
	}
	return s.repo.Update(ctx, reviewID, text, rating)
}

// DeleteOwned deletes the review keyed by both id and owner, so a
// non-owner delete removes nothing.
func (s *ReviewService) DeleteOwned(ctx context.Context, reviewID, accountID int) (bool, error) {
	return s.repo.DeleteOwned(ctx, reviewID, accountID)
}
