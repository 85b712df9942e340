package shared

import (
	"context"
	"time"

	"bookslot/internal/domain/appointment"
	"bookslot/internal/domain/user"
	"bookslot/internal/domain/waitlist"
	"bookslot/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.Executor) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.Executor) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Waitlist() WaitlistRepository
	Users() UserRepository
	Catalog() CatalogRepository
	Reads() CommandReads
	DB() db.Executor
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	LocationByID(ctx context.Context, id uuid.UUID) (*LocationSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.Executor, appt *appointment.Appointment) error
	Update(ctx context.Context, tx db.Executor, appt *appointment.Appointment) error
	Delete(ctx context.Context, tx db.Executor, id uuid.UUID) error
	// FindForUpdate locks the appointment row for the remainder of the
	// transaction and rehydrates the aggregate.
	FindForUpdate(ctx context.Context, tx db.Executor, id uuid.UUID) (*appointment.Appointment, error)
	// FindCandidates returns non-cancelled appointments sharing the same
	// location and calendar day, excluding excludeID when non-nil. Overlap
	// filtering happens in the caller.
	FindCandidates(ctx context.Context, tx db.Executor, locationID uuid.UUID, date string, excludeID *uuid.UUID) ([]SlotSnapshot, error)
	AttachCalendarEvent(ctx context.Context, tx db.Executor, id uuid.UUID, eventID string) error
	MarkConfirmationSent(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) error
	MarkReminderSent(ctx context.Context, tx db.Executor, id uuid.UUID, at time.Time) error
}

type WaitlistRepository interface {
	Create(ctx context.Context, tx db.Executor, entry *waitlist.Entry) error
	Delete(ctx context.Context, tx db.Executor, id uuid.UUID) error
	// NextPending locks the oldest un-notified entry for the slot group with
	// SKIP LOCKED so concurrent promotions never pick the same entry.
	// Returns (nil, nil) when the group has no pending entries.
	NextPending(ctx context.Context, tx db.Executor, serviceID uuid.UUID, locationID *uuid.UUID, date string) (*waitlist.Entry, error)
	MarkNotified(ctx context.Context, tx db.Executor, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.Executor, u *user.User) (uuid.UUID, error)
	// LoyaltyBalanceForUpdate locks the user row so balance adjustments
	// serialize per account.
	LoyaltyBalanceForUpdate(ctx context.Context, tx db.Executor, id uuid.UUID) (int, error)
	UpdateLoyaltyBalance(ctx context.Context, tx db.Executor, id uuid.UUID, balance int) error
	UpdateLastLogin(ctx context.Context, tx db.Executor, id uuid.UUID) error
}

type CatalogRepository interface {
	CreateService(ctx context.Context, tx db.Executor, svc ServiceSnapshot) (uuid.UUID, error)
	UpdateService(ctx context.Context, tx db.Executor, svc ServiceSnapshot) error
	CreateLocation(ctx context.Context, tx db.Executor, loc LocationSnapshot) (uuid.UUID, error)
	UpdateLocation(ctx context.Context, tx db.Executor, loc LocationSnapshot) error
}
