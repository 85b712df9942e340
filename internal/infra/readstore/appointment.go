package readstore

import (
	"context"
	"fmt"
	"time"

	"bookslot/internal/domain/schedule"
	"bookslot/internal/infra"
	"bookslot/internal/infra/db"
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentReadStore struct {
	exec db.Executor
}

func NewAppointmentReadStore(exec db.Executor) *AppointmentReadStore {
	return &AppointmentReadStore{exec: exec}
}

const appointmentViewColumns = `
	a.id, a.customer_name, a.customer_email, a.customer_phone, a.user_id,
	a.service_id, a.snapshot_name, a.snapshot_duration_minutes, a.snapshot_price,
	a.location_id, l.name, a.notes, a.date::text, a.start_minutes, a.duration_minutes,
	a.status, a.payment_status, a.payment_amount, a.payment_currency, a.payment_intent_id,
	a.loyalty_points_awarded, a.calendar_event_id, a.confirmation_sent_at, a.reminder_sent_at,
	a.created_at, a.updated_at`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.exec.QueryRow(ctx, `
		SELECT`+appointmentViewColumns+`
		FROM appointments a
		JOIN locations l ON l.id = a.location_id
		WHERE a.id = $1
	`, id)

	view, err := scanAppointmentView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return view, nil
}

func (r *AppointmentReadStore) FindFirstPage(ctx context.Context, filter queries.AppointmentFilter, limit int32) ([]*queries.AppointmentListItem, error) {
	where, args := buildAppointmentFilter(filter)
	args = append(args, limit)

	rows, err := r.exec.Query(ctx, fmt.Sprintf(`
		SELECT a.id, a.customer_name, a.snapshot_name, l.name,
			a.date::text, a.start_minutes, a.duration_minutes, a.status, a.created_at
		FROM appointments a
		JOIN locations l ON l.id = a.location_id
		%s
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $%d
	`, where, len(args)), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointments first page", err)
	}
	defer rows.Close()

	return collectAppointmentListItems(rows)
}

func (r *AppointmentReadStore) FindKeyset(ctx context.Context, filter queries.AppointmentFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AppointmentListItem, error) {
	where, args := buildAppointmentFilter(filter)
	args = append(args, lastCreatedAt, lastID)
	keyset := fmt.Sprintf("(a.created_at, a.id) < ($%d, $%d)", len(args)-1, len(args))
	if where == "" {
		where = "WHERE " + keyset
	} else {
		where += " AND " + keyset
	}
	args = append(args, limit)

	rows, err := r.exec.Query(ctx, fmt.Sprintf(`
		SELECT a.id, a.customer_name, a.snapshot_name, l.name,
			a.date::text, a.start_minutes, a.duration_minutes, a.status, a.created_at
		FROM appointments a
		JOIN locations l ON l.id = a.location_id
		%s
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $%d
	`, where, len(args)), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointments keyset", err)
	}
	defer rows.Close()

	return collectAppointmentListItems(rows)
}

func (r *AppointmentReadStore) FindBookedSlots(ctx context.Context, date string, locationID *uuid.UUID) ([]*queries.BookedSlotView, error) {
	rows, err := r.exec.Query(ctx, `
		SELECT id, start_minutes, duration_minutes, service_id
		FROM appointments
		WHERE date = $1
			AND status <> 'cancelled'
			AND ($2::uuid IS NULL OR location_id = $2)
		ORDER BY start_minutes ASC
	`, date, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked slots", err)
	}
	defer rows.Close()

	var slots []*queries.BookedSlotView
	for rows.Next() {
		var (
			slot         queries.BookedSlotView
			startMinutes int
		)
		if err := rows.Scan(&slot.ID, &startMinutes, &slot.DurationMinutes, &slot.ServiceID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot", err)
		}
		slot.TimeSlot = schedule.FormatMinutes(startMinutes)
		slots = append(slots, &slot)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked slots", rows.Err())
	}
	return slots, nil
}

func (r *AppointmentReadStore) FindDueReminders(ctx context.Context, date string) ([]*queries.ReminderTarget, error) {
	rows, err := r.exec.Query(ctx, `
		SELECT a.id, a.customer_name, a.customer_email, a.customer_phone,
			a.snapshot_name, l.name, a.date::text, a.start_minutes
		FROM appointments a
		JOIN locations l ON l.id = a.location_id
		WHERE a.date = $1
			AND a.status = 'scheduled'
			AND a.reminder_sent_at IS NULL
		ORDER BY a.start_minutes ASC
	`, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find due reminders", err)
	}
	defer rows.Close()

	var targets []*queries.ReminderTarget
	for rows.Next() {
		var (
			t            queries.ReminderTarget
			startMinutes int
		)
		if err := rows.Scan(&t.ID, &t.CustomerName, &t.CustomerEmail, &t.CustomerPhone,
			&t.ServiceName, &t.LocationName, &t.Date, &startMinutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder target", err)
		}
		t.TimeSlot = schedule.FormatMinutes(startMinutes)
		targets = append(targets, &t)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate due reminders", rows.Err())
	}
	return targets, nil
}

func buildAppointmentFilter(filter queries.AppointmentFilter) (string, []any) {
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

	if filter.UserID != nil {
		add("a.user_id = $%d", *filter.UserID)
	}
	if filter.LocationID != nil {
		add("a.location_id = $%d", *filter.LocationID)
	}
	if filter.Date != nil {
		add("a.date = $%d", *filter.Date)
	}
	if filter.Status != nil {
		add("a.status = $%d", *filter.Status)
	}
	return where, args
}

func collectAppointmentListItems(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*queries.AppointmentListItem, error) {
	var items []*queries.AppointmentListItem
	for rows.Next() {
		var (
			item         queries.AppointmentListItem
			startMinutes int
		)
		if err := rows.Scan(&item.ID, &item.CustomerName, &item.ServiceName, &item.LocationName,
			&item.Date, &startMinutes, &item.DurationMinutes, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment list item", err)
		}
		item.TimeSlot = schedule.FormatMinutes(startMinutes)
		items = append(items, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", rows.Err())
	}
	return items, nil
}

func scanAppointmentView(row interface{ Scan(dest ...any) error }) (*queries.AppointmentView, error) {
	var (
		view            queries.AppointmentView
		notes           string
		startMinutes    int
		payIntentID     string
		calendarEventID string
	)

	if err := row.Scan(
		&view.ID, &view.Customer.Name, &view.Customer.Email, &view.Customer.Phone, &view.UserID,
		&view.ServiceID, &view.ServiceSnapshot.Name, &view.ServiceSnapshot.DurationMinutes, &view.ServiceSnapshot.Price,
		&view.LocationID, &view.LocationName, &notes, &view.Date, &startMinutes, &view.DurationMinutes,
		&view.Status, &view.Payment.Status, &view.Payment.Amount, &view.Payment.Currency, &payIntentID,
		&view.LoyaltyPointsAwarded, &calendarEventID, &view.ConfirmationSentAt, &view.ReminderSentAt,
		&view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return nil, err
	}

	view.TimeSlot = schedule.FormatMinutes(startMinutes)
	if notes != "" {
		view.Notes = &notes
	}
	if payIntentID != "" {
		view.Payment.IntentID = &payIntentID
	}
	if calendarEventID != "" {
		view.CalendarEventID = &calendarEventID
	}
	return &view, nil
}
