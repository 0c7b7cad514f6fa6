// Package window decides which reminders are due for notification on a given day.
package window

import (
	"cloud.google.com/go/civil"

	"motor/internal/domain/entity"
)

// WeekHorizon is the furthest day, counted from today, covered by the week window.
const WeekHorizon = 7

// Windows is the result of Classify. The two slices never share a reminder.
type Windows struct {
	Tomorrow []*entity.Reminder
	Week     []*entity.Reminder
}

// Classify partitions reminders relative to today.
//
// Tomorrow holds every reminder due on today+1 regardless of its sent-state.
// Week holds unsent reminders due after today+1 and no later than today+7.
// Reminders without a due date are ignored. Input order is preserved.
func Classify(today civil.Date, reminders []*entity.Reminder) Windows {
	tomorrow := today.AddDays(1)
	horizon := today.AddDays(WeekHorizon)

	var w Windows
	for _, r := range reminders {
		if r == nil || r.DueDate == nil {
			continue
		}
		due := r.DueDate.Date
		switch {
		case due == tomorrow:
			w.Tomorrow = append(w.Tomorrow, r)
		case !r.IsSent && due.After(tomorrow) && !due.After(horizon):
			w.Week = append(w.Week, r)
		}
	}
	return w
}
