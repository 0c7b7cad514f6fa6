package repository

import (
	"context"
	"motor/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle data operations.
type VehicleRepository interface {
	// FindByID retrieves a vehicle with its owner.
	FindByID(ctx context.Context, id uint) (*entity.Vehicle, error)
	// FindAll retrieves all vehicles with their owners.
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
	// Create creates a new vehicle.
	Create(ctx context.Context, vehicle *entity.Vehicle) error
}
