package dto

import (
	"fmt"
	"time"

	"motor/internal/domain/constant"
)

// SweepReport summarises one notification sweep.
type SweepReport struct {
	RunID      string             `json:"run_id"`
	Kind       constant.SweepKind `json:"kind"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Sent       int                `json:"sent"`
	Skipped    int                `json:"skipped"`
	Failed     int                `json:"failed"`
	Marked     int                `json:"marked"`
	Overlapped bool               `json:"overlapped,omitempty"`
}

// Summary is a one-line human readable form used by the ops bot.
func (r SweepReport) Summary() string {
	if r.Overlapped {
		return fmt.Sprintf("[%s] sweep already running, run %s skipped", r.Kind, r.RunID)
	}
	return fmt.Sprintf("[%s] sent=%d skipped=%d failed=%d marked=%d in %s (run %s)",
		r.Kind, r.Sent, r.Skipped, r.Failed, r.Marked,
		r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond), r.RunID)
}
