package service

import (
	"context"

	"github.com/cse-motors/dealership/internal/core/domain"
	"github.com/cse-motors/dealership/internal/core/ports"
)

// InventoryService exposes classification and vehicle operations to the
// handlers. Reads pass straight through; writes normalize their input.
type InventoryService struct {
	repo ports.InventoryRepository
}

func NewInventoryService(repo ports.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) Classifications(ctx context.Context) ([]domain.Classification, error) {
	return s.repo.Classifications(ctx)
}

func (s *InventoryService) VehiclesByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error) {
	return s.repo.VehiclesByClassification(ctx, classificationID)
}

func (s *InventoryService) VehicleByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	return s.repo.VehicleByID(ctx, id)
}

func (s *InventoryService) AddClassification(ctx context.Context, name string) (*domain.Classification, error) {
	return s.repo.AddClassification(ctx, name)
}

func (s *InventoryService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	return s.repo.AddVehicle(ctx, vehicle)
}
