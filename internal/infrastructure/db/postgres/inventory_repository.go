package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cse-motors/dealership/internal/core/domain"
)

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Classifications(ctx context.Context) ([]domain.Classification, error) {
	const query = `
		SELECT classification_id, classification_name
		FROM classification
		ORDER BY classification_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer rows.Close()

	var list []domain.Classification
	for rows.Next() {
		var c domain.Classification
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *InventoryRepository) VehiclesByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error) {
	const query = `
		SELECT i.inventory_id, i.classification_id, i.inv_make, i.inv_model, i.inv_year,
		       i.inv_description, i.inv_image, i.inv_thumbnail, i.inv_price, i.inv_miles,
		       i.inv_color, c.classification_name
		FROM inventory i
		JOIN classification c ON i.classification_id = c.classification_id
		WHERE i.classification_id = $1
		ORDER BY i.inv_make, i.inv_model`

	rows, err := r.db.QueryContext(ctx, query, classificationID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.ClassificationID, &v.Make, &v.Model, &v.Year,
			&v.Description, &v.Image, &v.Thumbnail, &v.Price, &v.Miles,
			&v.Color, &v.ClassificationName); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *InventoryRepository) VehicleByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	const query = `
		SELECT inventory_id, classification_id, inv_make, inv_model, inv_year,
		       inv_description, inv_image, inv_thumbnail, inv_price, inv_miles, inv_color
		FROM inventory
		WHERE inventory_id = $1`

	var v domain.Vehicle
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.ClassificationID,
		&v.Make, &v.Model, &v.Year, &v.Description, &v.Image, &v.Thumbnail,
		&v.Price, &v.Miles, &v.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return &v, nil
}

func (r *InventoryRepository) AddClassification(ctx context.Context, name string) (*domain.Classification, error) {
	const query = `
		INSERT INTO classification (classification_name)
		VALUES ($1)
		RETURNING classification_id`

	c := domain.Classification{Name: name}
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("insert classification: %w", err)
	}
	return &c, nil
}

func (r *InventoryRepository) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	const query = `
		INSERT INTO inventory (classification_id, inv_make, inv_model, inv_year, inv_description,
		                       inv_image, inv_thumbnail, inv_price, inv_miles, inv_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING inventory_id`

	created := *vehicle
	err := r.db.QueryRowContext(ctx, query,
		vehicle.ClassificationID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.Description,
		vehicle.Image,
		vehicle.Thumbnail,
		vehicle.Price,
		vehicle.Miles,
		vehicle.Color,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}
	return &created, nil
}
