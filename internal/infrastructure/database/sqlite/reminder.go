package sqlite

import (
	"context"
	"errors"
	"fmt"
	"motor/internal/domain/entity"
	"motor/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindByID retrieves a reminder by its ID, with its vehicle and owner.
func (r *reminderRepository) FindByID(ctx context.Context, id uint) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).Preload("Vehicle.Owner").First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder with ID %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find reminder by id %d: %w", id, err)
	}
	return &reminder, nil
}

// FindByVehicleID retrieves all reminders for a vehicle.
func (r *reminderRepository) FindByVehicleID(ctx context.Context, vehicleID uint) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Order("id asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find reminders by vehicle_id %d: %w", vehicleID, err)
	}
	return reminders, nil
}

// FindAll retrieves all reminders with their vehicle and owner.
func (r *reminderRepository) FindAll(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Preload("Vehicle.Owner").Order("id asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find all reminders: %w", err)
	}
	return reminders, nil
}

// ExistsMatching reports whether an identical reminder is stored.
func (r *reminderRepository) ExistsMatching(ctx context.Context, vehicleID uint, reminderType string, dueDate entity.Date, message string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Reminder{}).
		Where("vehicle_id = ? AND type = ? AND due_date = ? AND message = ?", vehicleID, reminderType, dueDate, message).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing reminder for vehicle %d: %w", vehicleID, err)
	}
	return count > 0, nil
}

// Create creates a new reminder. Returns the ID of the created reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) (uint, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(reminder).Error; err != nil {
		return 0, fmt.Errorf("failed to create reminder for vehicle %d: %w", reminder.VehicleID, err)
	}
	return reminder.ID, nil
}

// CreateBatch inserts reminders in batches.
func (r *reminderRepository) CreateBatch(ctx context.Context, reminders []*entity.Reminder) error {
	if len(reminders) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(reminders, 100).Error; err != nil {
		return fmt.Errorf("failed to create %d reminders: %w", len(reminders), err)
	}
	return nil
}

// Update writes type, due date and message of an existing row. It never inserts.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Reminder{}).
		Where("id = ?", reminder.ID).
		Updates(map[string]interface{}{
			"type":     reminder.Type,
			"due_date": reminder.DueDate,
			"message":  reminder.Message,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update reminder %d: %w", reminder.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder %d: %w", reminder.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// MarkSent flips is_sent for a single row.
func (r *reminderRepository) MarkSent(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Reminder{}).
		Where("id = ?", id).
		UpdateColumn("is_sent", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark reminder %d as sent: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete deletes a reminder by its ID.
func (r *reminderRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Reminder{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete reminder %d: %w", id, err)
	}
	return nil
}

// Transaction runs fn inside a database transaction.
func (r *reminderRepository) Transaction(ctx context.Context, fn func(repo repository.ReminderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&reminderRepository{db: tx})
	})
}
