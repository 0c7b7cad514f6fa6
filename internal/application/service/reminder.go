package service

import (
	"context"
	"motor/internal/application/dto"
)

// ReminderService defines the interface for reminder-related business logic.
// userID is the authenticated caller; every vehicle-scoped call checks ownership.
type ReminderService interface {
	// AddReminder creates an unsent manual reminder on a vehicle the user owns.
	AddReminder(ctx context.Context, userID, vehicleID uint, req dto.ReminderRequest) (*dto.ReminderResponse, error)
	// UpdateReminder changes the type, due date and message of a reminder.
	UpdateReminder(ctx context.Context, userID, reminderID uint, req dto.ReminderRequest) (*dto.ReminderResponse, error)
	// DeleteReminder removes a reminder.
	DeleteReminder(ctx context.Context, userID, reminderID uint) error
	// ListVehicleReminders lists the reminders of a vehicle the user owns.
	ListVehicleReminders(ctx context.Context, userID, vehicleID uint) ([]dto.ReminderResponse, error)
	// ListAllReminders lists every stored reminder. Operator use only.
	ListAllReminders(ctx context.Context) ([]dto.ReminderResponse, error)
	// GenerateMaintenanceReminders asks the generation source for reminders based on
	// the vehicle's manual and mileage, and stores the ones not already present.
	GenerateMaintenanceReminders(ctx context.Context, userID, vehicleID uint) (*dto.GenerateResponse, error)
}
