package service

import (
	"context"
	"motor/internal/application/dto"
)

// DispatchService runs the periodic notification sweeps.
// Sweeps never return errors: per-item failures are logged and counted in the report.
type DispatchService interface {
	// RunDueSweep notifies owners about reminders in the tomorrow and week windows.
	RunDueSweep(ctx context.Context) dto.SweepReport
	// RunMileageSweep asks every reachable owner to update their odometer reading.
	RunMileageSweep(ctx context.Context) dto.SweepReport
}

// OpsNotifier receives a report after each scheduled sweep.
type OpsNotifier interface {
	NotifySweep(ctx context.Context, report dto.SweepReport) error
}

type nopOpsNotifier struct{}

// NewNopOpsNotifier returns an OpsNotifier that does nothing.
func NewNopOpsNotifier() OpsNotifier {
	return nopOpsNotifier{}
}

func (nopOpsNotifier) NotifySweep(context.Context, dto.SweepReport) error {
	return nil
}
