package repository

import (
	"context"
	"time"

	"bookslot/internal/domain/appointment"
	"bookslot/internal/domain/waitlist"
	"bookslot/internal/infra"
	"bookslot/internal/infra/db"

	"github.com/google/uuid"
)

type WaitlistRepository struct{}

func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{}
}

func (r *WaitlistRepository) Create(ctx context.Context, tx db.Executor, entry *waitlist.Entry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO waitlist_entries
			(id, customer_name, customer_email, customer_phone,
			 service_id, location_id, date, preferred_time_slot, notified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		entry.ID(),
		entry.Customer().Name(), entry.Customer().Email(), entry.Customer().Phone(),
		entry.ServiceID(), entry.LocationID(),
		entry.Date(), entry.PreferredTimeSlot(), entry.Notified(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRepository) Delete(ctx context.Context, tx db.Executor, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM waitlist_entries WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete waitlist entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("waitlist entry not found", nil, infra.KindNotFound)
	}
	return nil
}

// NextPending picks the group's oldest un-notified entry. SKIP LOCKED keeps
// two concurrent deletes from promoting the same entry; the loser sees the
// next one or none.
func (r *WaitlistRepository) NextPending(ctx context.Context, tx db.Executor, serviceID uuid.UUID, locationID *uuid.UUID, date string) (*waitlist.Entry, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, customer_name, customer_email, customer_phone,
			service_id, location_id, date::text, preferred_time_slot, notified, created_at
		FROM waitlist_entries
		WHERE service_id = $1
			AND date = $2
			AND notified = false
			AND ($3::uuid IS NULL OR location_id IS NULL OR location_id = $3)
		ORDER BY created_at ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, serviceID, date, locationID)

	entry, err := scanWaitlistEntry(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find pending waitlist entry", err)
	}
	return entry, nil
}

func (r *WaitlistRepository) MarkNotified(ctx context.Context, tx db.Executor, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE waitlist_entries SET notified = true WHERE id = $1 AND notified = false
	`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark waitlist entry notified", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("waitlist entry not found or already notified", nil, infra.KindNotFound)
	}
	return nil
}

func scanWaitlistEntry(row rowScanner) (*waitlist.Entry, error) {
	var (
		id                uuid.UUID
		customerName      string
		customerEmail     string
		customerPhone     string
		serviceID         uuid.UUID
		locationID        *uuid.UUID
		date              string
		preferredTimeSlot string
		notified          bool
		createdAt         time.Time
	)

	if err := row.Scan(
		&id, &customerName, &customerEmail, &customerPhone,
		&serviceID, &locationID, &date, &preferredTimeSlot, &notified, &createdAt,
	); err != nil {
		return nil, err
	}

	return waitlist.Reconstruct(
		id,
		appointment.ReconstructCustomer(customerName, customerEmail, customerPhone),
		serviceID,
		locationID,
		date,
		preferredTimeSlot,
		notified,
		createdAt,
	), nil
}
