package commands

import (
	"context"

	"bookslot/internal/domain/schedule"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

// conflictResolver answers one question: which appointments occupy a given
// interval at a location on a day. It reads, filters, and nothing else.
// Policy (reject vs waitlist) belongs to the caller.
type conflictResolver struct{}

// findConflicts fetches same-day candidates at the location and keeps those
// whose half-open interval intersects [startMinutes, startMinutes+duration).
// excludeID skips the appointment being rescheduled so it never conflicts
// with itself.
func (conflictResolver) findConflicts(
	ctx context.Context,
	tx shared.Tx,
	locationID uuid.UUID,
	date string,
	startMinutes, durationMinutes int,
	excludeID *uuid.UUID,
) ([]shared.SlotSnapshot, error) {
	candidates, err := tx.Appointments().FindCandidates(ctx, tx.DB(), locationID, date, excludeID)
	if err != nil {
		return nil, err
	}

	var conflicts []shared.SlotSnapshot
	for _, c := range candidates {
		if schedule.Overlaps(startMinutes, durationMinutes, c.StartMinutes, c.DurationMinutes) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts, nil
}
