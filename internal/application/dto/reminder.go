package dto

import (
	"motor/internal/domain/entity"
)

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID        uint    `json:"id"`
	VehicleID uint    `json:"vehicle_id"`
	Type      string  `json:"type"`
	DueDate   string  `json:"due_date,omitempty"`
	Message   string  `json:"message"`
	Mileage   *int    `json:"mileage,omitempty"`
	Priority  *string `json:"priority,omitempty"`
	Category  *string `json:"category,omitempty"`
	IsSent    bool    `json:"is_sent"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	resp := ReminderResponse{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		Type:      r.Type,
		Message:   r.Message,
		Mileage:   r.Mileage,
		Priority:  r.Priority,
		Category:  r.Category,
		IsSent:    r.IsSent,
	}
	if r.DueDate != nil {
		resp.DueDate = r.DueDate.String()
	}
	return resp
}

// ToReminderResponseList converts a slice of entity.Reminder to a slice of ReminderResponse DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}

// ReminderRequest is the DTO for creating or updating a manual reminder.
type ReminderRequest struct {
	Type    string `json:"type"`
	DueDate string `json:"due_date"` // YYYY-MM-DD
	Message string `json:"message"`
}

// GenerateResponse reports the outcome of a maintenance generation batch.
type GenerateResponse struct {
	VehicleID uint `json:"vehicle_id"`
	Inserted  int  `json:"inserted"`
	Skipped   int  `json:"skipped"`
}
