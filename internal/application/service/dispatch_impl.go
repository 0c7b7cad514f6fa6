package service

import (
	"context"
	"fmt"
	"motor/internal/application/composer"
	"motor/internal/application/dto"
	"motor/internal/domain/constant"
	"motor/internal/domain/entity"
	"motor/internal/domain/notifier"
	"motor/internal/domain/repository"
	"motor/internal/domain/window"
	"motor/internal/pkg/logger"
	"motor/internal/pkg/metrics"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type dispatchService struct {
	reminderRepo repository.ReminderRepository
	vehicleRepo  repository.VehicleRepository
	composer     *composer.Composer
	messaging    notifier.MessagingChannel
	email        notifier.EmailChannel
	loc          *time.Location
	now          func() time.Time
	log          logger.Logger

	dueMu     sync.Mutex
	mileageMu sync.Mutex
}

// NewDispatchService creates a new instance of DispatchService implementation.
// now may be nil, in which case time.Now is used. "Today" is evaluated in loc.
func NewDispatchService(
	reminderRepo repository.ReminderRepository,
	vehicleRepo repository.VehicleRepository,
	comp *composer.Composer,
	messaging notifier.MessagingChannel,
	email notifier.EmailChannel,
	loc *time.Location,
	now func() time.Time,
	log logger.Logger,
) DispatchService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &dispatchService{
		reminderRepo: reminderRepo,
		vehicleRepo:  vehicleRepo,
		composer:     comp,
		messaging:    messaging,
		email:        email,
		loc:          loc,
		now:          now,
		log:          log,
	}
}

func (s *dispatchService) newReport(kind constant.SweepKind) dto.SweepReport {
	return dto.SweepReport{
		RunID:     uuid.NewString(),
		Kind:      kind,
		StartedAt: s.now(),
	}
}

func (s *dispatchService) finish(report *dto.SweepReport) {
	report.FinishedAt = s.now()
	metrics.SweepDuration.WithLabelValues(string(report.Kind)).Observe(report.FinishedAt.Sub(report.StartedAt).Seconds())
}

// RunDueSweep processes the week window first, then the tomorrow window.
func (s *dispatchService) RunDueSweep(ctx context.Context) dto.SweepReport {
	report := s.newReport(constant.SweepDue)
	if !s.dueMu.TryLock() {
		s.log.Warn(fmt.Sprintf("Due sweep %s skipped: previous run still in progress", report.RunID))
		report.Overlapped = true
		report.FinishedAt = report.StartedAt
		return report
	}
	defer s.dueMu.Unlock()

	log := s.log.With("run_id", report.RunID).With("sweep", string(constant.SweepDue))

	reminders, err := s.reminderRepo.FindAll(ctx)
	if err != nil {
		log.Error("Failed to load reminders for due sweep", err)
		s.finish(&report)
		return report
	}

	today := civil.DateOf(s.now().In(s.loc))
	windows := window.Classify(today, reminders)
	log.Info(fmt.Sprintf("Due sweep for %s: %d in week window, %d in tomorrow window", today, len(windows.Week), len(windows.Tomorrow)))

	for _, r := range windows.Week {
		s.dispatchReminder(ctx, log, r, constant.WindowWeek, &report)
	}
	for _, r := range windows.Tomorrow {
		s.dispatchReminder(ctx, log, r, constant.WindowTomorrow, &report)
	}

	s.finish(&report)
	log.Info(fmt.Sprintf("Due sweep finished: sent=%d skipped=%d failed=%d marked=%d", report.Sent, report.Skipped, report.Failed, report.Marked))
	return report
}

func channelFor(kind constant.WindowKind) string {
	if kind == constant.WindowTomorrow {
		return constant.ChannelMessaging
	}
	return constant.ChannelEmail
}

func (s *dispatchService) dispatchReminder(ctx context.Context, log logger.Logger, r *entity.Reminder, kind constant.WindowKind, report *dto.SweepReport) {
	rlog := log.With("reminder_id", r.ID).With("window", kind.String())
	channel := channelFor(kind)

	if r.Vehicle == nil || r.Vehicle.Owner == nil {
		rlog.Debug(fmt.Sprintf("Skipping reminder %d: vehicle or owner missing", r.ID))
		report.Skipped++
		metrics.NotificationsTotal.WithLabelValues(kind.String(), channel, metrics.OutcomeSkipped).Inc()
		return
	}

	outcome := s.sendReminder(ctx, rlog, r, kind)
	switch outcome {
	case metrics.OutcomeSent:
		report.Sent++
	case metrics.OutcomeSkipped:
		report.Skipped++
	default:
		report.Failed++
	}
	metrics.NotificationsTotal.WithLabelValues(kind.String(), channel, outcome).Inc()

	// Week reminders are marked after every attempt, failed or skipped included.
	if kind == constant.WindowWeek {
		s.markSent(ctx, rlog, r, report)
	}
}

func (s *dispatchService) sendReminder(ctx context.Context, log logger.Logger, r *entity.Reminder, kind constant.WindowKind) string {
	owner := r.Vehicle.Owner

	content, err := s.composer.BuildReminder(r, r.Vehicle, owner, kind)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to compose reminder %d", r.ID), err)
		return metrics.OutcomeFailed
	}

	switch kind {
	case constant.WindowTomorrow:
		phone := owner.PhoneNumber()
		if phone == "" {
			log.Debug(fmt.Sprintf("Owner %d has no phone number, reminder %d not sent", owner.ID, r.ID))
			return metrics.OutcomeSkipped
		}
		if err := s.messaging.Send(ctx, content.Text, phone); err != nil {
			log.Error(fmt.Sprintf("Failed to send reminder %d via messaging", r.ID), err)
			return metrics.OutcomeFailed
		}
	default:
		addr := owner.EmailAddress()
		if addr == "" {
			log.Debug(fmt.Sprintf("Owner %d has no email address, reminder %d not sent", owner.ID, r.ID))
			return metrics.OutcomeSkipped
		}
		if err := s.email.Send(ctx, addr, content.Subject, content.HTML); err != nil {
			log.Error(fmt.Sprintf("Failed to send reminder %d via email", r.ID), err)
			return metrics.OutcomeFailed
		}
	}

	log.Info(fmt.Sprintf("Sent %s reminder %d to owner %d", kind, r.ID, owner.ID))
	return metrics.OutcomeSent
}

// markSent writes only the sent flag, so edits and deletions made during the sweep survive.
func (s *dispatchService) markSent(ctx context.Context, log logger.Logger, r *entity.Reminder, report *dto.SweepReport) {
	if err := s.reminderRepo.MarkSent(ctx, r.ID); err != nil {
		if isNotFound(err) {
			log.Info(fmt.Sprintf("Reminder %d was deleted during the sweep, not marking it as sent", r.ID))
			metrics.SentStateWritesTotal.WithLabelValues("missing").Inc()
			return
		}
		log.Error(fmt.Sprintf("Failed to mark reminder %d as sent", r.ID), err)
		metrics.SentStateWritesTotal.WithLabelValues("error").Inc()
		return
	}
	r.MarkSent()
	report.Marked++
	metrics.SentStateWritesTotal.WithLabelValues("ok").Inc()
}

// RunMileageSweep sends the odometer nudge to every vehicle owner with a phone number.
func (s *dispatchService) RunMileageSweep(ctx context.Context) dto.SweepReport {
	report := s.newReport(constant.SweepMileage)
	if !s.mileageMu.TryLock() {
		s.log.Warn(fmt.Sprintf("Mileage sweep %s skipped: previous run still in progress", report.RunID))
		report.Overlapped = true
		report.FinishedAt = report.StartedAt
		return report
	}
	defer s.mileageMu.Unlock()

	log := s.log.With("run_id", report.RunID).With("sweep", string(constant.SweepMileage))

	vehicles, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		log.Error("Failed to load vehicles for mileage sweep", err)
		s.finish(&report)
		return report
	}

	for _, v := range vehicles {
		outcome := s.nudgeVehicle(ctx, log.With("vehicle_id", v.ID), v)
		switch outcome {
		case metrics.OutcomeSent:
			report.Sent++
		case metrics.OutcomeSkipped:
			report.Skipped++
		default:
			report.Failed++
		}
		metrics.MileageNudgesTotal.WithLabelValues(outcome).Inc()
	}

	s.finish(&report)
	log.Info(fmt.Sprintf("Mileage sweep finished over %d vehicles: sent=%d skipped=%d failed=%d", len(vehicles), report.Sent, report.Skipped, report.Failed))
	return report
}

func (s *dispatchService) nudgeVehicle(ctx context.Context, log logger.Logger, v *entity.Vehicle) string {
	if v.Owner == nil {
		log.Debug(fmt.Sprintf("Skipping vehicle %d: no owner", v.ID))
		return metrics.OutcomeSkipped
	}
	phone := v.Owner.PhoneNumber()
	if phone == "" {
		log.Debug(fmt.Sprintf("Skipping vehicle %d: owner %d has no phone number", v.ID, v.Owner.ID))
		return metrics.OutcomeSkipped
	}
	if err := s.messaging.Send(ctx, composer.BuildMileageNudge(v), phone); err != nil {
		log.Error(fmt.Sprintf("Failed to send mileage nudge for vehicle %d", v.ID), err)
		return metrics.OutcomeFailed
	}
	return metrics.OutcomeSent
}
