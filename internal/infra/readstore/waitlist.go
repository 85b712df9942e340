package readstore

import (
	"context"
	"fmt"
	"time"

	"bookslot/internal/infra"
	"bookslot/internal/infra/db"
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type WaitlistReadStore struct {
	exec db.Executor
}

func NewWaitlistReadStore(exec db.Executor) *WaitlistReadStore {
	return &WaitlistReadStore{exec: exec}
}

const waitlistViewColumns = `
	w.id, w.customer_name, w.customer_email, w.customer_phone,
	w.service_id, s.name, w.location_id, w.date::text, w.preferred_time_slot,
	w.notified, w.created_at`

func (r *WaitlistReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WaitlistEntryView, error) {
	row := r.exec.QueryRow(ctx, `
		SELECT`+waitlistViewColumns+`
		FROM waitlist_entries w
		JOIN services s ON s.id = w.service_id
		WHERE w.id = $1
	`, id)

	view, err := scanWaitlistEntryView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waitlist entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find waitlist entry by ID", err)
	}
	return view, nil
}

// Waitlist pages are ordered oldest-first to mirror promotion order, so the
// keyset moves forward, not backward.
func (r *WaitlistReadStore) FindFirstPage(ctx context.Context, filter queries.WaitlistFilter, limit int32) ([]*queries.WaitlistEntryView, error) {
	where, args := buildWaitlistFilter(filter)
	args = append(args, limit)

	rows, err := r.exec.Query(ctx, fmt.Sprintf(`
		SELECT`+waitlistViewColumns+`
		FROM waitlist_entries w
		JOIN services s ON s.id = w.service_id
		%s
		ORDER BY w.created_at ASC, w.id ASC
		LIMIT $%d
	`, where, len(args)), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find waitlist first page", err)
	}
	defer rows.Close()

	return collectWaitlistEntryViews(rows)
}

func (r *WaitlistReadStore) FindKeyset(ctx context.Context, filter queries.WaitlistFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.WaitlistEntryView, error) {
	where, args := buildWaitlistFilter(filter)
	args = append(args, lastCreatedAt, lastID)
	keyset := fmt.Sprintf("(w.created_at, w.id) > ($%d, $%d)", len(args)-1, len(args))
	if where == "" {
		where = "WHERE " + keyset
	} else {
		where += " AND " + keyset
	}
	args = append(args, limit)

	rows, err := r.exec.Query(ctx, fmt.Sprintf(`
		SELECT`+waitlistViewColumns+`
		FROM waitlist_entries w
		JOIN services s ON s.id = w.service_id
		%s
		ORDER BY w.created_at ASC, w.id ASC
		LIMIT $%d
	`, where, len(args)), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find waitlist keyset", err)
	}
	defer rows.Close()

	return collectWaitlistEntryViews(rows)
}

func buildWaitlistFilter(filter queries.WaitlistFilter) (string, []any) {
	where := ""
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		cond = fmt.Sprintf(cond, len(args))
		if where == "" {
			where = "WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	if filter.ServiceID != nil {
		add("w.service_id = $%d", *filter.ServiceID)
	}
	if filter.Date != nil {
		add("w.date = $%d", *filter.Date)
	}
	if filter.Notified != nil {
		add("w.notified = $%d", *filter.Notified)
	}
	return where, args
}

func collectWaitlistEntryViews(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*queries.WaitlistEntryView, error) {
	var views []*queries.WaitlistEntryView
	for rows.Next() {
		view, err := scanWaitlistEntryView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlist entry", err)
		}
		views = append(views, view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate waitlist entries", rows.Err())
	}
	return views, nil
}

func scanWaitlistEntryView(row interface{ Scan(dest ...any) error }) (*queries.WaitlistEntryView, error) {
	var (
		view          queries.WaitlistEntryView
		preferredSlot string
	)

	if err := row.Scan(
		&view.ID, &view.Customer.Name, &view.Customer.Email, &view.Customer.Phone,
		&view.ServiceID, &view.ServiceName, &view.LocationID, &view.Date, &preferredSlot,
		&view.Notified, &view.CreatedAt,
	); err != nil {
		return nil, err
	}

	if preferredSlot != "" {
		view.PreferredTimeSlot = &preferredSlot
	}
	return &view, nil
}
