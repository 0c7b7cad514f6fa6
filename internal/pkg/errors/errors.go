package errors

import (
	"errors"
	"fmt"
)

// Custom application errors
var (
	ErrValidation          = errors.New("invalid input")                                // Required field missing or malformed
	ErrUserNotFound        = errors.New("user not found")                               // Caller does not exist
	ErrVehicleNotFound     = errors.New("vehicle not found")                            // Vehicle does not exist
	ErrReminderNotFound    = errors.New("reminder not found")                           // Reminder does not exist
	ErrUnauthorized        = errors.New("unauthorized user")                            // Caller does not own the vehicle
	ErrVehicleInaccessible = errors.New("vehicle is not accessible on the current plan") // Vehicle locked by plan
	ErrMileageRequired     = errors.New("vehicle mileage is required")                  // Generation needs a mileage reading
	ErrManualUnavailable   = errors.New("manual for this vehicle is not available")     // No source document for the vehicle
	ErrGeneration          = errors.New("failed to generate maintenance reminders")     // Generation source failure
	ErrDatabaseOperation   = errors.New("database operation failed")                    // Generic database error
	ErrScheduling          = errors.New("scheduling failed")                            // Cron registration error
	ErrInternalServer      = errors.New("internal server error")                        // Generic internal error
)

// ValidationError describes which field failed validation. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
