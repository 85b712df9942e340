package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
	RoleUser  = "user"
)

type CustomerView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ServiceSnapshotView is the service data frozen at booking time. It never
// changes when the catalog entry is edited later.
type ServiceSnapshotView struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int    `json:"price"`
}

type PaymentView struct {
	Status   string  `json:"status"`
	Amount   int     `json:"amount"`
	Currency string  `json:"currency"`
	IntentID *string `json:"intent_id,omitempty"`
}

// Read models (DTO for read side)
type AppointmentView struct {
	ID                   uuid.UUID           `json:"id"`
	Customer             CustomerView        `json:"customer"`
	UserID               *uuid.UUID          `json:"user_id,omitempty"`
	ServiceID            uuid.UUID           `json:"service_id"`
	ServiceSnapshot      ServiceSnapshotView `json:"service_snapshot"`
	LocationID           uuid.UUID           `json:"location_id"`
	LocationName         string              `json:"location_name"`
	Date                 string              `json:"date"`
	TimeSlot             string              `json:"time_slot"`
	DurationMinutes      int                 `json:"duration_minutes"`
	Status               string              `json:"status"`
	Notes                *string             `json:"notes,omitempty"`
	Payment              PaymentView         `json:"payment"`
	LoyaltyPointsAwarded int                 `json:"loyalty_points_awarded"`
	CalendarEventID      *string             `json:"calendar_event_id,omitempty"`
	ConfirmationSentAt   *time.Time          `json:"confirmation_sent_at,omitempty"`
	ReminderSentAt       *time.Time          `json:"reminder_sent_at,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

type AppointmentListItem struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customer_name"`
	ServiceName     string    `json:"service_name"`
	LocationName    string    `json:"location_name"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookedSlotView exposes occupancy without any customer data, so the
// endpoint can stay public.
type BookedSlotView struct {
	ID              uuid.UUID `json:"id"`
	TimeSlot        string    `json:"time_slot"`
	DurationMinutes int       `json:"duration_minutes"`
	ServiceID       uuid.UUID `json:"service_id"`
}

type WaitlistEntryView struct {
	ID                uuid.UUID    `json:"id"`
	Customer          CustomerView `json:"customer"`
	ServiceID         uuid.UUID    `json:"service_id"`
	ServiceName       string       `json:"service_name"`
	LocationID        *uuid.UUID   `json:"location_id,omitempty"`
	Date              string       `json:"date"`
	PreferredTimeSlot *string      `json:"preferred_time_slot,omitempty"`
	Notified          bool         `json:"notified"`
	CreatedAt         time.Time    `json:"created_at"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           int       `json:"price"`
	Category        string    `json:"category"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LocationView struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	Timezone            string    `json:"timezone"`
	SlotIntervalMinutes int       `json:"slot_interval_minutes"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	LoyaltyPoints int       `json:"loyalty_points"`
	IsActive      bool      `json:"is_active"`
}

// ReminderTarget carries just enough to send an upcoming-appointment reminder.
type ReminderTarget struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceName   string
	LocationName  string
	Date          string
	TimeSlot      string
}
