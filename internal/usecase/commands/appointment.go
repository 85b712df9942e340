package commands

import (
	"context"
	"errors"
	"log/slog"

	"bookslot/internal/domain/appointment"
	"bookslot/internal/domain/catalog"
	"bookslot/internal/domain/loyalty"
	"bookslot/internal/domain/schedule"
	"bookslot/internal/domain/waitlist"
	"bookslot/internal/infra"
	"bookslot/internal/pkg/clock"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/queries"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

const queuedMessage = "The requested slot is unavailable. You have been added to the waitlist."

type CreateAppointmentInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ServiceID       uuid.UUID
	LocationID      uuid.UUID
	Date            string
	TimeSlot        string
	Notes           string
	UserID          *uuid.UUID
	PaymentIntentID string
	RedeemPoints    int
	// JoinWaitlist turns a full slot into a queued outcome instead of a
	// conflict error.
	JoinWaitlist bool
}

type UpdateAppointmentInput struct {
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	ServiceID       *uuid.UUID
	LocationID      *uuid.UUID
	Date            *string
	TimeSlot        *string
	DurationMinutes *int
	Notes           *string
	Status          *string
}

// BookingResult is the engine's two-outcome answer: either the slot was
// booked, or the request was queued on the waitlist. Queued is not an
// error; the caller maps it to its own representation (HTTP 202).
type BookingResult struct {
	Appointment   *queries.AppointmentView
	Queued        bool
	WaitlistEntry *queries.WaitlistEntryView
	Message       string
}

// DeleteResult reports the waitlist entry promoted by the freed slot, when
// one existed.
type DeleteResult struct {
	PromotedEntry *queries.WaitlistEntryView
}

type AppointmentCommands interface {
	Create(ctx context.Context, in CreateAppointmentInput) (*BookingResult, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateAppointmentInput, actorID uuid.UUID, actorRole string) (*queries.AppointmentView, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*DeleteResult, error)
}

type appointmentUseCaseImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	resolver        conflictResolver
	appointmentQrys queries.AppointmentQueries
	waitlistQrys    queries.WaitlistQueries
	broadcaster     Broadcaster
	notifier        NotificationSender
	calendar        CalendarSync
	currency        string
}

func NewAppointmentUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	appointmentQrys queries.AppointmentQueries,
	waitlistQrys queries.WaitlistQueries,
	broadcaster Broadcaster,
	notifier NotificationSender,
	calendar CalendarSync,
	currency string,
) AppointmentCommands {
	return &appointmentUseCaseImpl{
		uow:             uow,
		clock:           clk,
		appointmentQrys: appointmentQrys,
		waitlistQrys:    waitlistQrys,
		broadcaster:     broadcaster,
		notifier:        notifier,
		calendar:        calendar,
		currency:        currency,
	}
}

func (uc *appointmentUseCaseImpl) Create(ctx context.Context, in CreateAppointmentInput) (*BookingResult, error) {
	customer, err := appointment.NewCustomer(in.CustomerName, in.CustomerEmail, in.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var (
		createdID uuid.UUID
		queuedID  *uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := uc.resolveService(ctx, tx, in.ServiceID)
		if derr != nil {
			return derr
		}
		loc, derr := uc.resolveLocation(ctx, tx, in.LocationID)
		if derr != nil {
			return derr
		}

		appt, derr := appointment.NewAppointment(
			&appointment.Services{Clock: uc.clock},
			customer,
			in.UserID,
			svc,
			loc.ID,
			in.Date,
			in.TimeSlot,
			in.Notes,
			in.PaymentIntentID,
			uc.currency,
		)
		if derr != nil {
			if errors.Is(derr, appointment.ErrStartsInPast) {
				return errs.ErrAppointmentInPast
			}
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		conflicts, derr := uc.resolver.findConflicts(ctx, tx, appt.LocationID(), appt.Date(), appt.StartMinutes(), appt.DurationMinutes(), nil)
		if derr != nil {
			return derr
		}
		if len(conflicts) > 0 {
			if !in.JoinWaitlist {
				return errs.ErrSlotConflict
			}
			locID := appt.LocationID()
			entry, werr := waitlist.NewEntry(customer, appt.ServiceID(), &locID, appt.Date(), appt.TimeSlot())
			if werr != nil {
				return errs.Mark(werr, errs.ErrDomainValidation)
			}
			if werr := tx.Waitlist().Create(ctx, tx.DB(), entry); werr != nil {
				return errs.Mark(werr, errs.ErrDatabaseOperationFailed)
			}
			id := entry.ID()
			queuedID = &id
			return nil
		}

		if in.UserID != nil {
			if derr := uc.applyLoyalty(ctx, tx, appt, *in.UserID, in.RedeemPoints); derr != nil {
				return derr
			}
		}

		// Insert last: the exclusion constraint is the authoritative answer
		// when a concurrent booking won the same interval between our check
		// and this insert.
		if derr := tx.Appointments().Create(ctx, tx.DB(), appt); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.ErrSlotConflict
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		createdID = appt.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if queuedID != nil {
		entryView, qerr := uc.waitlistQrys.GetByID(ctx, *queuedID)
		if qerr != nil {
			return nil, errs.Mark(qerr, errs.ErrDatabaseOperationFailed)
		}
		uc.broadcaster.Broadcast(ctx, EventWaitlistUpdated, entryView)
		return &BookingResult{
			Queued:        true,
			WaitlistEntry: entryView,
			Message:       queuedMessage,
		}, nil
	}

	// Read-after-write: return the complete view from the read store.
	view, err := uc.appointmentQrys.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view = uc.afterBooking(ctx, view)
	uc.broadcaster.Broadcast(ctx, EventAppointmentCreated, view)

	return &BookingResult{Appointment: view}, nil
}

func (uc *appointmentUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in UpdateAppointmentInput, actorID uuid.UUID, actorRole string) (*queries.AppointmentView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, derr := uc.lockAppointment(ctx, tx, id, actorID, actorRole)
		if derr != nil {
			return derr
		}

		if derr := uc.applyPatch(ctx, tx, appt, in); derr != nil {
			return derr
		}

		// Reschedules cannot land in the past any more than new bookings can.
		if in.Date != nil || in.TimeSlot != nil {
			start, serr := schedule.SlotStart(appt.Date(), appt.StartMinutes())
			if serr != nil {
				return errs.Mark(serr, errs.ErrDomainValidation)
			}
			if start.Before(uc.clock.Now()) {
				return errs.ErrAppointmentInPast
			}
		}

		if appt.CountsForConflicts() {
			selfID := appt.ID()
			conflicts, cerr := uc.resolver.findConflicts(ctx, tx, appt.LocationID(), appt.Date(), appt.StartMinutes(), appt.DurationMinutes(), &selfID)
			if cerr != nil {
				return cerr
			}
			if len(conflicts) > 0 {
				return errs.ErrSlotConflict
			}
		}

		if derr := tx.Appointments().Update(ctx, tx.DB(), appt); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.ErrSlotConflict
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.appointmentQrys.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.syncCalendar(ctx, view)
	uc.broadcaster.Broadcast(ctx, EventAppointmentUpdated, view)

	return view, nil
}

func (uc *appointmentUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*DeleteResult, error) {
	var (
		promotedID      *uuid.UUID
		calendarEventID string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, derr := uc.lockAppointment(ctx, tx, id, actorID, actorRole)
		if derr != nil {
			return derr
		}
		calendarEventID = appt.CalendarEventID()

		if derr := tx.Appointments().Delete(ctx, tx.DB(), appt.ID()); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		// The freed slot promotes the oldest pending entry in the same group,
		// atomically with the delete. Promotion only flags the entry; booking
		// the slot stays the customer's move.
		locID := appt.LocationID()
		entry, derr := tx.Waitlist().NextPending(ctx, tx.DB(), appt.ServiceID(), &locID, appt.Date())
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		if entry != nil {
			if derr := entry.MarkNotified(); derr != nil {
				return derr
			}
			if derr := tx.Waitlist().MarkNotified(ctx, tx.DB(), entry.ID()); derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
			entryID := entry.ID()
			promotedID = &entryID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if calendarEventID != "" {
		if cerr := uc.calendar.DeleteEvent(ctx, calendarEventID); cerr != nil {
			slog.Warn("calendar event delete failed", "appointment_id", id, "error", cerr.Error())
		}
	}
	uc.broadcaster.Broadcast(ctx, EventAppointmentDeleted, map[string]any{"id": id})

	result := &DeleteResult{}
	if promotedID != nil {
		entryView, qerr := uc.waitlistQrys.GetByID(ctx, *promotedID)
		if qerr != nil {
			slog.Warn("promoted waitlist entry read failed", "entry_id", *promotedID, "error", qerr.Error())
			return result, nil
		}
		result.PromotedEntry = entryView
		if nerr := uc.notifier.SendSlotOpened(ctx, entryView); nerr != nil {
			slog.Warn("waitlist notification failed", "entry_id", entryView.ID, "error", nerr.Error())
		}
		uc.broadcaster.Broadcast(ctx, EventWaitlistUpdated, entryView)
	}
	return result, nil
}

func (uc *appointmentUseCaseImpl) resolveService(ctx context.Context, tx shared.Tx, id uuid.UUID) (*catalog.Service, error) {
	snap, err := tx.Reads().ServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotAvailable
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	svc := &catalog.Service{
		ID:              snap.ID,
		Name:            snap.Name,
		Description:     snap.Description,
		DurationMinutes: snap.DurationMinutes,
		Price:           snap.Price,
		Category:        snap.Category,
		IsActive:        snap.IsActive,
	}
	if !svc.Available() {
		return nil, errs.ErrServiceNotAvailable
	}
	return svc, nil
}

func (uc *appointmentUseCaseImpl) resolveLocation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*catalog.Location, error) {
	snap, err := tx.Reads().LocationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLocationNotAvailable
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	loc := &catalog.Location{
		ID:                  snap.ID,
		Name:                snap.Name,
		Address:             snap.Address,
		SlotIntervalMinutes: snap.SlotIntervalMinutes,
		IsActive:            snap.IsActive,
	}
	if !loc.Available() {
		return nil, errs.ErrLocationNotAvailable
	}
	return loc, nil
}

// applyLoyalty runs the ledger against the locked user row. Redemption,
// award, and the new balance commit or roll back together with the booking.
func (uc *appointmentUseCaseImpl) applyLoyalty(ctx context.Context, tx shared.Tx, appt *appointment.Appointment, userID uuid.UUID, redeemPoints int) error {
	balance, err := tx.Users().LoyaltyBalanceForUpdate(ctx, tx.DB(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	adj := loyalty.Apply(balance, redeemPoints, appt.Snapshot().Price)
	appt.RedeemFromPayment(adj.Redeemed)
	appt.AwardLoyalty(adj.Earned)

	if err := tx.Users().UpdateLoyaltyBalance(ctx, tx.DB(), userID, adj.NewBalance); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *appointmentUseCaseImpl) lockAppointment(ctx context.Context, tx shared.Tx, id uuid.UUID, actorID uuid.UUID, actorRole string) (*appointment.Appointment, error) {
	appt, err := tx.Appointments().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentMissing
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	switch actorRole {
	case queries.RoleAdmin, queries.RoleStaff:
	default:
		if appt.UserID() == nil || *appt.UserID() != actorID {
			return nil, errs.ErrAppointmentAccess
		}
	}
	return appt, nil
}

func (uc *appointmentUseCaseImpl) applyPatch(ctx context.Context, tx shared.Tx, appt *appointment.Appointment, in UpdateAppointmentInput) error {
	if in.CustomerName != nil || in.CustomerEmail != nil || in.CustomerPhone != nil {
		cur := appt.Customer()
		name, email, phone := cur.Name(), cur.Email(), cur.Phone()
		if in.CustomerName != nil {
			name = *in.CustomerName
		}
		if in.CustomerEmail != nil {
			email = *in.CustomerEmail
		}
		if in.CustomerPhone != nil {
			phone = *in.CustomerPhone
		}
		patched, err := appointment.NewCustomer(name, email, phone)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		appt.MergeCustomer(patched)
	}

	if in.ServiceID != nil && *in.ServiceID != appt.ServiceID() {
		svc, err := uc.resolveService(ctx, tx, *in.ServiceID)
		if err != nil {
			return err
		}
		// Service change re-freezes the snapshot; duration and price follow
		// the new service even if the patch also carried a duration.
		if err := appt.ApplyService(svc); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	} else if in.DurationMinutes != nil {
		if err := appt.SetDurationMinutes(*in.DurationMinutes); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if in.LocationID != nil && *in.LocationID != appt.LocationID() {
		loc, err := uc.resolveLocation(ctx, tx, *in.LocationID)
		if err != nil {
			return err
		}
		if err := appt.MoveToLocation(loc.ID); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if in.Date != nil || in.TimeSlot != nil {
		date, slot := appt.Date(), appt.TimeSlot()
		if in.Date != nil {
			date = *in.Date
		}
		if in.TimeSlot != nil {
			slot = *in.TimeSlot
		}
		if err := appt.Reschedule(date, slot); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if in.Notes != nil {
		if err := appt.SetNotes(*in.Notes); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if in.Status != nil {
		if err := appt.TransitionTo(appointment.Status(*in.Status)); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	return nil
}

// afterBooking runs the best-effort collaborators for a fresh booking:
// calendar sync, confirmation send, and their bookkeeping stamps. None of
// these can fail the booking; it is already committed.
func (uc *appointmentUseCaseImpl) afterBooking(ctx context.Context, view *queries.AppointmentView) *queries.AppointmentView {
	changed := false

	if eventID := uc.syncCalendar(ctx, view); eventID != "" {
		changed = true
	}

	if err := uc.notifier.SendBookingConfirmation(ctx, view); err != nil {
		slog.Warn("booking confirmation failed", "appointment_id", view.ID, "error", err.Error())
	} else {
		now := uc.clock.Now()
		if err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Appointments().MarkConfirmationSent(ctx, tx.DB(), view.ID, now)
		}); err != nil {
			slog.Warn("confirmation stamp failed", "appointment_id", view.ID, "error", err.Error())
		} else {
			changed = true
		}
	}

	if !changed {
		return view
	}
	refreshed, err := uc.appointmentQrys.GetByIDSystem(ctx, view.ID)
	if err != nil {
		return view
	}
	return refreshed
}

func (uc *appointmentUseCaseImpl) syncCalendar(ctx context.Context, view *queries.AppointmentView) string {
	eventID, err := uc.calendar.UpsertEvent(ctx, view)
	if err != nil {
		slog.Warn("calendar sync failed", "appointment_id", view.ID, "error", err.Error())
		return ""
	}
	if eventID == "" {
		return ""
	}

	if err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().AttachCalendarEvent(ctx, tx.DB(), view.ID, eventID)
	}); err != nil {
		slog.Warn("calendar event attach failed", "appointment_id", view.ID, "error", err.Error())
		return ""
	}
	return eventID
}
