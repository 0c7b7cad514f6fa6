// Package generation describes the external source of machine-generated maintenance reminders.
package generation

import (
	"context"
	"fmt"
	"strings"

	"motor/internal/domain/constant"
	"motor/internal/domain/entity"
	appErrors "motor/internal/pkg/errors"
)

// Candidate is one reminder proposed by the generation source.
type Candidate struct {
	DueDate  string  `json:"due_date"`
	Message  string  `json:"message"`
	Mileage  *int    `json:"mileage,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Result is the generation source's answer for one vehicle.
type Result struct {
	Success   bool        `json:"success"`
	Error     string      `json:"error,omitempty"`
	Reminders []Candidate `json:"reminders"`
}

// Source produces maintenance reminders from a vehicle's owner manual.
type Source interface {
	// DocumentExists reports whether the named manual is indexed by the source.
	DocumentExists(ctx context.Context, documentName string) (bool, error)
	// GenerateMaintenanceReminders asks for reminders given the current mileage.
	GenerateMaintenanceReminders(ctx context.Context, mileage int, documentName string) (*Result, error)
}

// DocumentName is the manual name the source indexes a vehicle under.
func DocumentName(v *entity.Vehicle) string {
	return fmt.Sprintf("%d %s %s owner-manual", v.Year, v.Make, v.Model)
}

// ToReminder converts the candidate into an unsent maintenance reminder for vehicleID.
// The due date is trimmed before parsing; the message is kept verbatim.
func (c Candidate) ToReminder(vehicleID uint) (*entity.Reminder, error) {
	raw := strings.TrimSpace(c.DueDate)
	if raw == "" {
		return nil, appErrors.NewValidationError("due_date", "is required")
	}
	due, err := entity.ParseDate(raw)
	if err != nil {
		return nil, appErrors.NewValidationError("due_date", fmt.Sprintf("%q is not a YYYY-MM-DD date", raw))
	}
	return &entity.Reminder{
		VehicleID: vehicleID,
		Type:      constant.TypeMaintenance,
		DueDate:   &due,
		Message:   c.Message,
		Mileage:   c.Mileage,
		Priority:  c.Priority,
		Category:  c.Category,
		IsSent:    false,
	}, nil
}

// ToReminders converts every candidate or fails on the first invalid one.
func ToReminders(vehicleID uint, candidates []Candidate) ([]*entity.Reminder, error) {
	out := make([]*entity.Reminder, 0, len(candidates))
	for i, c := range candidates {
		r, err := c.ToReminder(vehicleID)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}
