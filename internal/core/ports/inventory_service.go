package ports

import (
	"context"

	"github.com/cse-motors/dealership/internal/core/domain"
)

type InventoryService interface {
	Classifications(ctx context.Context) ([]domain.Classification, error)
	VehiclesByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error)
	VehicleByID(ctx context.Context, id int) (*domain.Vehicle, error)
	AddClassification(ctx context.Context, name string) (*domain.Classification, error)
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
}
