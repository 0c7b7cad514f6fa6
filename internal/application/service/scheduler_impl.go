package service

import (
	"context"
	"fmt"
	"motor/internal/application/dto"
	"motor/internal/domain/constant"
	"motor/internal/infrastructure/scheduler"
	appErrors "motor/internal/pkg/errors"
	"motor/internal/pkg/logger"
	"sync"

	"github.com/robfig/cron/v3"
)

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	dispatch      DispatchService
	ops           OpsNotifier
	log           logger.Logger

	mu      sync.Mutex
	entries []cron.EntryID
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
// ops may be nil.
func NewSchedulerService(
	cronScheduler *scheduler.Scheduler,
	dispatch DispatchService,
	ops OpsNotifier,
	log logger.Logger,
) SchedulerService {
	if ops == nil {
		ops = NewNopOpsNotifier()
	}
	return &schedulerService{
		cronScheduler: cronScheduler,
		dispatch:      dispatch,
		ops:           ops,
		log:           log,
	}
}

// RegisterSweeps schedules the due-reminder and mileage sweeps.
// Either both sweeps are scheduled or neither is.
func (s *schedulerService) RegisterSweeps(dueSpec, mileageSpec string) error {
	jobs := []struct {
		kind constant.SweepKind
		spec string
		run  func(ctx context.Context) dto.SweepReport
	}{
		{kind: constant.SweepDue, spec: dueSpec, run: s.dispatch.RunDueSweep},
		{kind: constant.SweepMileage, spec: mileageSpec, run: s.dispatch.RunMileageSweep},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]cron.EntryID, 0, len(jobs))
	for _, job := range jobs {
		job := job
		id, err := s.cronScheduler.AddJob(job.spec, func() { s.runScheduled(job.kind, job.run) })
		if err != nil {
			s.removeJobs(added)
			return fmt.Errorf("%w: %s sweep: %v", appErrors.ErrScheduling, job.kind, err)
		}
		added = append(added, id)
		s.log.Info(fmt.Sprintf("Scheduled %s sweep with spec %q", job.kind, job.spec))
	}

	// A second registration replaces the first.
	s.removeJobs(s.entries)
	s.entries = added
	return nil
}

func (s *schedulerService) removeJobs(ids []cron.EntryID) {
	for _, id := range ids {
		s.cronScheduler.RemoveJob(id)
	}
}

func (s *schedulerService) runScheduled(kind constant.SweepKind, run func(ctx context.Context) dto.SweepReport) {
	// Use background context for cron job execution
	ctx := context.Background()
	s.log.Info(fmt.Sprintf("Executing scheduled %s sweep", kind))

	report := run(ctx)
	if report.Overlapped {
		return
	}
	if err := s.ops.NotifySweep(ctx, report); err != nil {
		s.log.Error(fmt.Sprintf("Failed to notify operators about %s sweep %s", kind, report.RunID), err)
	}
}

// Start starts the underlying scheduler.
func (s *schedulerService) Start() {
	s.cronScheduler.Start()
}

// Stop stops the underlying scheduler and waits for running sweeps.
func (s *schedulerService) Stop() {
	s.cronScheduler.Stop()
}
