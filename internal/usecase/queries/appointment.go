package queries

import (
	"context"
	"time"

	"bookslot/internal/domain/schedule"
	"bookslot/internal/infra"
	"bookslot/internal/pkg/errs"

	"github.com/google/uuid"
)

// AppointmentFilter narrows list reads. UserID is forced to the actor for
// non-staff callers.
type AppointmentFilter struct {
	UserID     *uuid.UUID
	LocationID *uuid.UUID
	Date       *string
	Status     *string
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*AppointmentView, error)
	// GetByIDSystem skips authorization for read-after-write inside the engine.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	List(ctx context.Context, filter AppointmentFilter, actorID uuid.UUID, actorRole string, cursor *Cursor, limit int) ([]*AppointmentListItem, *Cursor, error)
	BookedSlots(ctx context.Context, date string, locationID *uuid.UUID) ([]*BookedSlotView, error)
	DueReminders(ctx context.Context, date string) ([]*ReminderTarget, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindFirstPage(ctx context.Context, filter AppointmentFilter, limit int32) ([]*AppointmentListItem, error)
	FindKeyset(ctx context.Context, filter AppointmentFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*AppointmentListItem, error)
	FindBookedSlots(ctx context.Context, date string, locationID *uuid.UUID) ([]*BookedSlotView, error)
	FindDueReminders(ctx context.Context, date string) ([]*ReminderTarget, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*AppointmentView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actorRole {
	case RoleAdmin, RoleStaff:
	default:
		// Guest bookings have no owner, so only staff can read them back.
		if view.UserID == nil || *view.UserID != actorID {
			return nil, errs.ErrAppointmentAccess
		}
	}

	return view, nil
}

func (q *appointmentQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentMissing
		}
		return nil, err
	}
	return view, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, filter AppointmentFilter, actorID uuid.UUID, actorRole string, cursor *Cursor, limit int) ([]*AppointmentListItem, *Cursor, error) {
	switch actorRole {
	case RoleAdmin, RoleStaff:
	default:
		filter.UserID = &actorID
	}

	if filter.Date != nil {
		if _, err := schedule.ParseDate(*filter.Date); err != nil {
			return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	limit = ValidateLimit(limit)
	var rows []*AppointmentListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindFirstPage(ctx, filter, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindKeyset(ctx, filter, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *appointmentQueriesImpl) BookedSlots(ctx context.Context, date string, locationID *uuid.UUID) ([]*BookedSlotView, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return q.store.FindBookedSlots(ctx, date, locationID)
}

func (q *appointmentQueriesImpl) DueReminders(ctx context.Context, date string) ([]*ReminderTarget, error) {
	return q.store.FindDueReminders(ctx, date)
}
