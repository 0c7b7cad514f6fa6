package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"motor/internal/application/dto"
	"motor/internal/application/service"
)

// SweepHandler exposes manual sweep triggers for operators.
// Sweeps keep running when the caller disconnects.
type SweepHandler struct {
	dispatch service.DispatchService
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(dispatch service.DispatchService) *SweepHandler {
	return &SweepHandler{dispatch: dispatch}
}

func reportStatus(report dto.SweepReport) int {
	if report.Overlapped {
		return http.StatusConflict
	}
	return http.StatusOK
}

// RunDue handles POST /internal/sweeps/due.
func (h *SweepHandler) RunDue(c echo.Context) error {
	report := h.dispatch.RunDueSweep(context.WithoutCancel(c.Request().Context()))
	return c.JSON(reportStatus(report), report)
}

// RunMileage handles POST /internal/sweeps/mileage.
func (h *SweepHandler) RunMileage(c echo.Context) error {
	report := h.dispatch.RunMileageSweep(context.WithoutCancel(c.Request().Context()))
	return c.JSON(reportStatus(report), report)
}
