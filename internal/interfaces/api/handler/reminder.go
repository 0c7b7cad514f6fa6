package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"motor/internal/application/dto"
	"motor/internal/application/service"
	appErrors "motor/internal/pkg/errors"
	"motor/internal/pkg/logger"
)

// ReminderHandler serves the reminder REST API.
type ReminderHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService, log: log}
}

func (h *ReminderHandler) bindRequest(c echo.Context) (dto.ReminderRequest, error) {
	var req dto.ReminderRequest
	if err := c.Bind(&req); err != nil {
		return req, appErrors.NewValidationError("body", "is not valid JSON")
	}
	return req, nil
}

// List handles GET /api/v1/vehicles/:vehicleID/reminders.
func (h *ReminderHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	vehicleID, err := pathID(c, "vehicleID")
	if err != nil {
		return respondError(c, err)
	}
	reminders, err := h.reminderService.ListVehicleReminders(c.Request().Context(), userID, vehicleID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminders)
}

// Create handles POST /api/v1/vehicles/:vehicleID/reminders.
func (h *ReminderHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	vehicleID, err := pathID(c, "vehicleID")
	if err != nil {
		return respondError(c, err)
	}
	req, err := h.bindRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	reminder, err := h.reminderService.AddReminder(c.Request().Context(), userID, vehicleID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, reminder)
}

// Update handles PUT /api/v1/reminders/:reminderID.
func (h *ReminderHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	reminderID, err := pathID(c, "reminderID")
	if err != nil {
		return respondError(c, err)
	}
	req, err := h.bindRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	reminder, err := h.reminderService.UpdateReminder(c.Request().Context(), userID, reminderID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminder)
}

// Delete handles DELETE /api/v1/reminders/:reminderID.
func (h *ReminderHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	reminderID, err := pathID(c, "reminderID")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.reminderService.DeleteReminder(c.Request().Context(), userID, reminderID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Generate handles POST /api/v1/vehicles/:vehicleID/reminders/generate.
func (h *ReminderHandler) Generate(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	vehicleID, err := pathID(c, "vehicleID")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.reminderService.GenerateMaintenanceReminders(c.Request().Context(), userID, vehicleID)
	if err != nil {
		h.log.Warn(fmt.Sprintf("Generation for vehicle %d requested by user %d failed: %v", vehicleID, userID, err))
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListAll handles GET /internal/reminders.
func (h *ReminderHandler) ListAll(c echo.Context) error {
	reminders, err := h.reminderService.ListAllReminders(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, reminders)
}
