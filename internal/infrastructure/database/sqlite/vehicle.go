package sqlite

import (
	"context"
	"errors"
	"fmt"
	"motor/internal/domain/entity"
	"motor/internal/domain/repository"

	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new instance of VehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// FindByID retrieves a vehicle with its owner.
func (r *vehicleRepository) FindByID(ctx context.Context, id uint) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	if err := r.db.WithContext(ctx).Preload("Owner").First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle with ID %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find vehicle by id %d: %w", id, err)
	}
	return &vehicle, nil
}

// FindAll retrieves all vehicles with their owners.
func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	if err := r.db.WithContext(ctx).Preload("Owner").Order("id asc").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to find all vehicles: %w", err)
	}
	return vehicles, nil
}

// Create creates a new vehicle.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}
