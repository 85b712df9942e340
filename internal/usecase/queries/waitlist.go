package queries

import (
	"context"
	"time"

	"bookslot/internal/infra"
	"bookslot/internal/pkg/errs"

	"github.com/google/uuid"
)

type WaitlistFilter struct {
	ServiceID *uuid.UUID
	Date      *string
	Notified  *bool
}

type WaitlistQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*WaitlistEntryView, error)
	List(ctx context.Context, filter WaitlistFilter, cursor *Cursor, limit int) ([]*WaitlistEntryView, *Cursor, error)
}

type WaitlistReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WaitlistEntryView, error)
	FindFirstPage(ctx context.Context, filter WaitlistFilter, limit int32) ([]*WaitlistEntryView, error)
	FindKeyset(ctx context.Context, filter WaitlistFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*WaitlistEntryView, error)
}

type waitlistQueriesImpl struct {
	store WaitlistReadStore
}

func NewWaitlistQueries(store WaitlistReadStore) WaitlistQueries {
	return &waitlistQueriesImpl{store: store}
}

func (q *waitlistQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*WaitlistEntryView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrWaitlistEntryMissing
		}
		return nil, err
	}
	return view, nil
}

// Entries come back oldest-first so the list shows promotion order.
func (q *waitlistQueriesImpl) List(ctx context.Context, filter WaitlistFilter, cursor *Cursor, limit int) ([]*WaitlistEntryView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*WaitlistEntryView
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
