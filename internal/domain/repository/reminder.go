package repository

import (
	"context"
	"motor/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// FindByID retrieves a reminder by its ID, with its vehicle and owner.
	FindByID(ctx context.Context, id uint) (*entity.Reminder, error)
	// FindByVehicleID retrieves all reminders for a vehicle.
	FindByVehicleID(ctx context.Context, vehicleID uint) ([]*entity.Reminder, error)
	// FindAll retrieves all reminders with their vehicle and owner, in store order.
	FindAll(ctx context.Context) ([]*entity.Reminder, error)
	// ExistsMatching reports whether a reminder with the same vehicle, type, due date and message exists.
	ExistsMatching(ctx context.Context, vehicleID uint, reminderType string, dueDate entity.Date, message string) (bool, error)
	// Create creates a new reminder. Returns the ID of the created reminder.
	Create(ctx context.Context, reminder *entity.Reminder) (uint, error)
	// CreateBatch inserts reminders in a single statement batch.
	CreateBatch(ctx context.Context, reminders []*entity.Reminder) error
	// Update writes the editable columns (type, due date, message) of an existing reminder.
	// The sent-state and associations are not touched.
	Update(ctx context.Context, reminder *entity.Reminder) error
	// MarkSent sets is_sent on the reminder with the given ID and nothing else.
	// A missing row yields an error wrapping gorm.ErrRecordNotFound.
	MarkSent(ctx context.Context, id uint) error
	// Delete deletes a reminder by its ID.
	Delete(ctx context.Context, id uint) error
	// Transaction runs fn with a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(repo ReminderRepository) error) error
}
