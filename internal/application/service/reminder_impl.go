package service

import (
	"context"
	"errors"
	"fmt"
	"motor/internal/application/dto"
	"motor/internal/domain/dedup"
	"motor/internal/domain/entity"
	"motor/internal/domain/generation"
	"motor/internal/domain/repository"
	appErrors "motor/internal/pkg/errors"
	"motor/internal/pkg/logger"
	"strings"

	"gorm.io/gorm"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	vehicleRepo  repository.VehicleRepository
	userRepo     repository.UserRepository
	source       generation.Source
	log          logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	source generation.Source,
	log logger.Logger,
) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		vehicleRepo:  vehicleRepo,
		userRepo:     userRepo,
		source:       source,
		log:          log,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (s *reminderService) requireUser(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return appErrors.ErrUserNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find user %d", userID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// checkVehicle enforces ownership and, when requireAccess is set, the plan lock.
func checkVehicle(v *entity.Vehicle, userID uint, requireAccess bool) error {
	if !v.OwnedBy(userID) {
		return appErrors.ErrUnauthorized
	}
	if requireAccess && !v.IsAccessible {
		return appErrors.ErrVehicleInaccessible
	}
	return nil
}

func (s *reminderService) ownedVehicle(ctx context.Context, userID, vehicleID uint, requireAccess bool) (*entity.Vehicle, error) {
	v, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.ErrVehicleNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find vehicle %d", vehicleID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if err := checkVehicle(v, userID, requireAccess); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *reminderService) ownedReminder(ctx context.Context, userID, reminderID uint) (*entity.Reminder, error) {
	r, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find reminder %d", reminderID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if r.Vehicle == nil {
		return nil, appErrors.ErrVehicleNotFound
	}
	if err := checkVehicle(r.Vehicle, userID, true); err != nil {
		return nil, err
	}
	return r, nil
}

type reminderFields struct {
	reminderType string
	dueDate      entity.Date
	message      string
}

func parseReminderRequest(req dto.ReminderRequest) (reminderFields, error) {
	var f reminderFields
	f.reminderType = strings.TrimSpace(req.Type)
	if f.reminderType == "" {
		return f, appErrors.NewValidationError("type", "is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return f, appErrors.NewValidationError("message", "is required")
	}
	f.message = req.Message
	raw := strings.TrimSpace(req.DueDate)
	if raw == "" {
		return f, appErrors.NewValidationError("due_date", "is required")
	}
	due, err := entity.ParseDate(raw)
	if err != nil {
		return f, appErrors.NewValidationError("due_date", fmt.Sprintf("%q is not a YYYY-MM-DD date", raw))
	}
	f.dueDate = due
	return f, nil
}

// AddReminder creates an unsent manual reminder on a vehicle the user owns.
func (s *reminderService) AddReminder(ctx context.Context, userID, vehicleID uint, req dto.ReminderRequest) (*dto.ReminderResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	v, err := s.ownedVehicle(ctx, userID, vehicleID, true)
	if err != nil {
		return nil, err
	}
	f, err := parseReminderRequest(req)
	if err != nil {
		return nil, err
	}

	reminder := &entity.Reminder{
		VehicleID: v.ID,
		Type:      f.reminderType,
		DueDate:   &f.dueDate,
		Message:   f.message,
		IsSent:    false,
	}
	if _, err := s.reminderRepo.Create(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for vehicle %d", v.ID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("User %d added reminder %d to vehicle %d", userID, reminder.ID, v.ID))
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// UpdateReminder changes the type, due date and message of a reminder. The sent-state is kept.
func (s *reminderService) UpdateReminder(ctx context.Context, userID, reminderID uint, req dto.ReminderRequest) (*dto.ReminderResponse, error) {
	reminder, err := s.ownedReminder(ctx, userID, reminderID)
	if err != nil {
		return nil, err
	}
	f, err := parseReminderRequest(req)
	if err != nil {
		return nil, err
	}

	reminder.Type = f.reminderType
	reminder.DueDate = &f.dueDate
	reminder.Message = f.message
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		if isNotFound(err) {
			return nil, appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to update reminder %d", reminder.ID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("User %d updated reminder %d", userID, reminder.ID))
	resp := dto.ToReminderResponse(reminder)
	return &resp, nil
}

// DeleteReminder removes a reminder.
func (s *reminderService) DeleteReminder(ctx context.Context, userID, reminderID uint) error {
	reminder, err := s.ownedReminder(ctx, userID, reminderID)
	if err != nil {
		return err
	}
	if err := s.reminderRepo.Delete(ctx, reminder.ID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminder %d", reminder.ID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("User %d deleted reminder %d", userID, reminder.ID))
	return nil
}

// ListVehicleReminders lists the reminders of a vehicle the user owns.
// Locked vehicles stay readable.
func (s *reminderService) ListVehicleReminders(ctx context.Context, userID, vehicleID uint) ([]dto.ReminderResponse, error) {
	v, err := s.ownedVehicle(ctx, userID, vehicleID, false)
	if err != nil {
		return nil, err
	}
	reminders, err := s.reminderRepo.FindByVehicleID(ctx, v.ID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list reminders for vehicle %d", v.ID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToReminderResponseList(reminders), nil
}

// ListAllReminders lists every stored reminder.
func (s *reminderService) ListAllReminders(ctx context.Context) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reminders", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToReminderResponseList(reminders), nil
}

// GenerateMaintenanceReminders validates the whole batch before writing, then
// inserts the non-duplicate candidates in one transaction.
func (s *reminderService) GenerateMaintenanceReminders(ctx context.Context, userID, vehicleID uint) (*dto.GenerateResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	v, err := s.ownedVehicle(ctx, userID, vehicleID, true)
	if err != nil {
		return nil, err
	}
	if v.Mileage == nil {
		return nil, appErrors.ErrMileageRequired
	}

	documentName := generation.DocumentName(v)
	exists, err := s.source.DocumentExists(ctx, documentName)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to look up manual %q", documentName), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrGeneration, err)
	}
	if !exists {
		s.log.Warn(fmt.Sprintf("Manual %q not available for vehicle %d", documentName, v.ID))
		return nil, appErrors.ErrManualUnavailable
	}

	result, err := s.source.GenerateMaintenanceReminders(ctx, *v.Mileage, documentName)
	if err != nil {
		s.log.Error(fmt.Sprintf("Generation request failed for vehicle %d", v.ID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrGeneration, err)
	}
	if result == nil || !result.Success {
		reason := "unsuccessful response"
		if result != nil && result.Error != "" {
			reason = result.Error
		}
		return nil, fmt.Errorf("%w: %s", appErrors.ErrGeneration, reason)
	}
	if len(result.Reminders) == 0 {
		return nil, fmt.Errorf("%w: no reminders returned", appErrors.ErrGeneration)
	}

	candidates, err := generation.ToReminders(v.ID, result.Reminders)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Rejected generated batch for vehicle %d: %v", v.ID, err))
		return nil, err
	}

	resp := &dto.GenerateResponse{VehicleID: v.ID}
	err = s.reminderRepo.Transaction(ctx, func(tx repository.ReminderRepository) error {
		kept, skipped, err := dedup.Filter(ctx, tx, candidates)
		if err != nil {
			return err
		}
		if len(kept) > 0 {
			if err := tx.CreateBatch(ctx, kept); err != nil {
				return err
			}
		}
		resp.Inserted = len(kept)
		resp.Skipped = skipped
		return nil
	})
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to store generated reminders for vehicle %d", v.ID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("Generated reminders for vehicle %d: inserted=%d skipped=%d", v.ID, resp.Inserted, resp.Skipped))
	return resp, nil
}
