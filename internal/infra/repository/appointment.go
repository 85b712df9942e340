package repository

import (
	"context"
	"time"

	"bookslot/internal/domain/appointment"
	"bookslot/internal/infra"
	"bookslot/internal/infra/db"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

const appointmentColumns = `
	id, customer_name, customer_email, customer_phone, user_id,
	service_id, snapshot_name, snapshot_duration_minutes, snapshot_price,
	location_id, notes, date::text, start_minutes, duration_minutes, status,
	payment_status, payment_amount, payment_currency, payment_intent_id,
	loyalty_points_awarded, calendar_event_id,
	confirmation_sent_at, reminder_sent_at, created_at, updated_at`

func (r *AppointmentRepository) Create(ctx context.Context, tx db.Executor, appt *appointment.Appointment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO appointments
			(id, customer_name, customer_email, customer_phone, user_id,
			 service_id, snapshot_name, snapshot_duration_minutes, snapshot_price,
			 location_id, notes, date, start_minutes, duration_minutes, status,
			 payment_status, payment_amount, payment_currency, payment_intent_id,
			 loyalty_points_awarded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`,
		appt.ID(),
		appt.Customer().Name(), appt.Customer().Email(), appt.Customer().Phone(),
		appt.UserID(),
		appt.ServiceID(),
		appt.Snapshot().Name, appt.Snapshot().DurationMinutes, appt.Snapshot().Price,
		appt.LocationID(),
		appt.Notes(),
		appt.Date(), appt.StartMinutes(), appt.DurationMinutes(),
		string(appt.Status()),
		string(appt.Payment().Status), appt.Payment().Amount, appt.Payment().Currency, appt.Payment().IntentID,
		appt.LoyaltyAwarded(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, tx db.Executor, appt *appointment.Appointment) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET customer_name = $2,
			customer_email = $3,
			customer_phone = $4,
			service_id = $5,
			snapshot_name = $6,
			snapshot_duration_minutes = $7,
			snapshot_price = $8,
			location_id = $9,
			notes = $10,
			date = $11,
			start_minutes = $12,
			duration_minutes = $13,
			status = $14,
			payment_status = $15,
			payment_amount = $16,
			updated_at = now()
		WHERE id = $1
	`,
		appt.ID(),
		appt.Customer().Name(), appt.Customer().Email(), appt.Customer().Phone(),
		appt.ServiceID(),
		appt.Snapshot().Name, appt.Snapshot().DurationMinutes, appt.Snapshot().Price,
		appt.LocationID(),
		appt.Notes(),
		appt.Date(), appt.StartMinutes(), appt.DurationMinutes(),
		string(appt.Status()),
		string(appt.Payment().Status), appt.Payment().Amount,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx db.Executor, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) FindForUpdate(ctx context.Context, tx db.Executor, id uuid.UUID) (*appointment.Appointment, error) {
	row := tx.QueryRow(ctx, `
		SELECT`+appointmentColumns+`
		FROM appointments
		WHERE id = $1
		FOR UPDATE
	`, id)

	appt, err := scanAppointment(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment for update", err)
	}
	return appt, nil
}

func (r *AppointmentRepository) FindCandidates(ctx context.Context, tx db.Executor, locationID uuid.UUID, date string, excludeID *uuid.UUID) ([]shared.SlotSnapshot, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, start_minutes, duration_minutes
		FROM appointments
		WHERE location_id = $1
			AND date = $2
			AND status <> 'cancelled'
			AND ($3::uuid IS NULL OR id <> $3)
		ORDER BY start_minutes ASC
	`, locationID, date, excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find candidate slots", err)
	}
	defer rows.Close()

	var slots []shared.SlotSnapshot
	for rows.Next() {
		var s shared.SlotSnapshot
		if err := rows.Scan(&s.ID, &s.StartMinutes, &s.DurationMinutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate slot", err)
		}
		slots = append(slots, s)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate candidate slots", rows.Err())
	}
	return slots, nil
}

func (r *AppointmentRepository) AttachCalendarEvent(ctx context.Context, tx db.Executor, id uuid.UUID, eventID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointments SET calendar_event_id = $2, updated_at = now() WHERE id = $1
	`, id, eventID)
	if err != nil {
		return infra.WrapRepoErr("failed to attach calendar event", err)
	}
	return nil
}

func (r *AppointmentRepository) MarkConfirmationSent(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointments SET confirmation_sent_at = $2, updated_at = now() WHERE id = $1
	`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark confirmation sent", err)
	}
	return nil
}

func (r *AppointmentRepository) MarkReminderSent(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointments SET reminder_sent_at = $2, updated_at = now() WHERE id = $1
	`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder sent", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*appointment.Appointment, error) {
	var (
		id              uuid.UUID
		customerName    string
		customerEmail   string
		customerPhone   string
		userID          *uuid.UUID
		serviceID       uuid.UUID
		snapName        string
		snapDuration    int
		snapPrice       int
		locationID      uuid.UUID
		notes           string
		date            string
		startMinutes    int
		durationMinutes int
		status          string
		payStatus       string
		payAmount       int
		payCurrency     string
		payIntentID     string
		loyaltyAwarded  int
		calendarEventID string
		confirmedAt     *time.Time
		remindedAt      *time.Time
		createdAt       time.Time
		updatedAt       time.Time
	)

	if err := row.Scan(
		&id, &customerName, &customerEmail, &customerPhone, &userID,
		&serviceID, &snapName, &snapDuration, &snapPrice,
		&locationID, &notes, &date, &startMinutes, &durationMinutes, &status,
		&payStatus, &payAmount, &payCurrency, &payIntentID,
		&loyaltyAwarded, &calendarEventID,
		&confirmedAt, &remindedAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	return appointment.Reconstruct(
		id,
		appointment.ReconstructCustomer(customerName, customerEmail, customerPhone),
		userID,
		serviceID,
		appointment.ServiceSnapshot{Name: snapName, DurationMinutes: snapDuration, Price: snapPrice},
		locationID,
		notes,
		date,
		startMinutes, durationMinutes,
		appointment.Status(status),
		appointment.Payment{
			Status:   appointment.PaymentStatus(payStatus),
			Amount:   payAmount,
			Currency: payCurrency,
			IntentID: payIntentID,
		},
		loyaltyAwarded,
		calendarEventID,
		confirmedAt, remindedAt,
		createdAt, updatedAt,
	), nil
}
