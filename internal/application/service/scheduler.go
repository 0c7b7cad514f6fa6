package service

// SchedulerService runs the sweeps on their cron schedules.
type SchedulerService interface {
	// RegisterSweeps schedules the due-reminder and mileage sweeps.
	RegisterSweeps(dueSpec, mileageSpec string) error
	// Start starts the underlying scheduler.
	Start()
	// Stop stops the underlying scheduler and waits for running sweeps.
	Stop()
}
