package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"motor/internal/domain/entity"
	"motor/internal/domain/repository"
)

type fakeReminderRepo struct {
	mu        sync.Mutex
	reminders []*entity.Reminder
	listErr   error
	markErr   map[uint]error
	marks     []uint
}

func (f *fakeReminderRepo) clone(r *entity.Reminder) *entity.Reminder {
	c := *r
	return &c
}

func (f *fakeReminderRepo) get(id uint) *entity.Reminder {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reminders {
		if r.ID == id {
			return f.clone(r)
		}
	}
	return nil
}

func (f *fakeReminderRepo) FindByID(_ context.Context, id uint) (*entity.Reminder, error) {
	if r := f.get(id); r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("reminder %d: %w", id, gorm.ErrRecordNotFound)
}

func (f *fakeReminderRepo) FindByVehicleID(_ context.Context, vehicleID uint) ([]*entity.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Reminder
	for _, r := range f.reminders {
		if r.VehicleID == vehicleID {
			out = append(out, f.clone(r))
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) FindAll(context.Context) ([]*entity.Reminder, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Reminder, 0, len(f.reminders))
	for _, r := range f.reminders {
		out = append(out, f.clone(r))
	}
	return out, nil
}

func (f *fakeReminderRepo) ExistsMatching(context.Context, uint, string, entity.Date, string) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeReminderRepo) Create(context.Context, *entity.Reminder) (uint, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeReminderRepo) CreateBatch(context.Context, []*entity.Reminder) error {
	return errors.New("not implemented")
}

func (f *fakeReminderRepo) Update(context.Context, *entity.Reminder) error {
	return errors.New("not implemented")
}

func (f *fakeReminderRepo) MarkSent(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marks = append(f.marks, id)
	if err := f.markErr[id]; err != nil {
		return err
	}
	for _, r := range f.reminders {
		if r.ID == id {
			r.IsSent = true
			return nil
		}
	}
	return fmt.Errorf("reminder %d: %w", id, gorm.ErrRecordNotFound)
}

func (f *fakeReminderRepo) Delete(context.Context, uint) error {
	return errors.New("not implemented")
}

func (f *fakeReminderRepo) Transaction(_ context.Context, fn func(repo repository.ReminderRepository) error) error {
	return fn(f)
}

func (f *fakeReminderRepo) markCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.marks)
}

type fakeVehicleRepo struct {
	vehicles []*entity.Vehicle
	listErr  error
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id uint) (*entity.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, fmt.Errorf("vehicle %d: %w", id, gorm.ErrRecordNotFound)
}

func (f *fakeVehicleRepo) FindAll(context.Context) ([]*entity.Vehicle, error) {
	return f.vehicles, f.listErr
}

func (f *fakeVehicleRepo) Create(context.Context, *entity.Vehicle) error {
	return errors.New("not implemented")
}

type delivery struct {
	Channel string
	To      string
	Subject string
	Body    string
}

// outbox records deliveries across both channels in call order.
type outbox struct {
	mu         sync.Mutex
	deliveries []delivery
	fail       map[string]error // keyed by destination
}

func (o *outbox) record(d delivery) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deliveries = append(o.deliveries, d)
	return o.fail[d.To]
}

func (o *outbox) all() []delivery {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]delivery(nil), o.deliveries...)
}

type fakeMessaging struct {
	box *outbox
	// entered and release, when set, block Send until release is closed.
	entered chan struct{}
	release chan struct{}
}

func (f *fakeMessaging) Send(ctx context.Context, body, phone string) error {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	return f.box.record(delivery{Channel: "messaging", To: phone, Body: body})
}

type fakeEmail struct {
	box *outbox
	// onSend, when set, runs before the delivery is recorded.
	onSend func()
}

func (f *fakeEmail) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f.onSend != nil {
		f.onSend()
	}
	return f.box.record(delivery{Channel: "email", To: to, Subject: subject, Body: htmlBody})
}
