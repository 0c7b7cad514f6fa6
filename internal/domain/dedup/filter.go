// Package dedup keeps repeated batch generation from inserting the same reminder twice.
package dedup

import (
	"context"
	"fmt"

	"motor/internal/domain/entity"
)

// Lookup answers whether an identical reminder is already stored.
type Lookup interface {
	ExistsMatching(ctx context.Context, vehicleID uint, reminderType string, dueDate entity.Date, message string) (bool, error)
}

// Same reports whether a and b describe the same reminder: same vehicle, type,
// due date and byte-identical message.
func Same(a, b *entity.Reminder) bool {
	if a.VehicleID != b.VehicleID || a.Type != b.Type || a.Message != b.Message {
		return false
	}
	if a.DueDate == nil || b.DueDate == nil {
		return a.DueDate == nil && b.DueDate == nil
	}
	return a.DueDate.Date == b.DueDate.Date
}

// Filter drops candidates that already exist in the store and candidates that
// repeat an earlier one in the same batch. Candidates must have a due date.
func Filter(ctx context.Context, lookup Lookup, candidates []*entity.Reminder) (kept []*entity.Reminder, skipped int, err error) {
	kept = make([]*entity.Reminder, 0, len(candidates))
	for _, c := range candidates {
		if c.DueDate == nil {
			return nil, 0, fmt.Errorf("candidate for vehicle %d has no due date", c.VehicleID)
		}
		if containsSame(kept, c) {
			skipped++
			continue
		}
		exists, err := lookup.ExistsMatching(ctx, c.VehicleID, c.Type, *c.DueDate, c.Message)
		if err != nil {
			return nil, 0, err
		}
		if exists {
			skipped++
			continue
		}
		kept = append(kept, c)
	}
	return kept, skipped, nil
}

func containsSame(rs []*entity.Reminder, c *entity.Reminder) bool {
	for _, r := range rs {
		if Same(r, c) {
			return true
		}
	}
	return false
}
