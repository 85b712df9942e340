package response

import (
	"time"

	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ServiceSnapshotResponse struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int    `json:"price"`
}

type PaymentResponse struct {
	Status   string  `json:"status"`
	Amount   int     `json:"amount"`
	Currency string  `json:"currency"`
	IntentID *string `json:"intentId,omitempty"`
}

type AppointmentResponse struct {
	ID                   uuid.UUID               `json:"id"`
	Customer             CustomerResponse        `json:"customer"`
	UserID               *uuid.UUID              `json:"userId,omitempty"`
	ServiceID            uuid.UUID               `json:"serviceId"`
	ServiceSnapshot      ServiceSnapshotResponse `json:"serviceSnapshot"`
	LocationID           uuid.UUID               `json:"locationId"`
	LocationName         string                  `json:"locationName"`
	Date                 string                  `json:"date"`
	TimeSlot             string                  `json:"timeSlot"`
	DurationMinutes      int                     `json:"durationMinutes"`
	Status               string                  `json:"status"`
	Notes                *string                 `json:"notes,omitempty"`
	Payment              PaymentResponse         `json:"payment"`
	LoyaltyPointsAwarded int                     `json:"loyaltyPointsAwarded"`
	CalendarEventID      *string                 `json:"calendarEventId,omitempty"`
	CreatedAt            time.Time               `json:"createdAt"`
	UpdatedAt            time.Time               `json:"updatedAt"`
}

type AppointmentEnvelope struct {
	Appointment *AppointmentResponse `json:"appointment"`
}

// QueuedResponse is the 202 body when a full slot lands the request on the
// waitlist instead.
type QueuedResponse struct {
	Message       string                 `json:"message"`
	WaitlistEntry *WaitlistEntryResponse `json:"waitlistEntry,omitempty"`
}

type AppointmentListItemResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	ServiceName     string    `json:"serviceName"`
	LocationName    string    `json:"locationName"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"timeSlot"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type AppointmentListResponse struct {
	Appointments []*AppointmentListItemResponse `json:"appointments"`
	NextCursor   *string                        `json:"nextCursor,omitempty"`
}

type BookedSlotResponse struct {
	ID              uuid.UUID `json:"id"`
	TimeSlot        string    `json:"timeSlot"`
	DurationMinutes int       `json:"durationMinutes"`
	ServiceID       uuid.UUID `json:"serviceId"`
}

type BookedSlotsResponse struct {
	Slots []*BookedSlotResponse `json:"slots"`
}

type DeleteAppointmentResponse struct {
	Deleted       bool                   `json:"deleted"`
	PromotedEntry *WaitlistEntryResponse `json:"promotedEntry,omitempty"`
}

func FromAppointmentView(rm *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID: rm.ID,
		Customer: CustomerResponse{
			Name:  rm.Customer.Name,
			Email: rm.Customer.Email,
			Phone: rm.Customer.Phone,
		},
		UserID:    rm.UserID,
		ServiceID: rm.ServiceID,
		ServiceSnapshot: ServiceSnapshotResponse{
			Name:            rm.ServiceSnapshot.Name,
			DurationMinutes: rm.ServiceSnapshot.DurationMinutes,
			Price:           rm.ServiceSnapshot.Price,
		},
		LocationID:      rm.LocationID,
		LocationName:    rm.LocationName,
		Date:            rm.Date,
		TimeSlot:        rm.TimeSlot,
		DurationMinutes: rm.DurationMinutes,
		Status:          rm.Status,
		Notes:           rm.Notes,
		Payment: PaymentResponse{
			Status:   rm.Payment.Status,
			Amount:   rm.Payment.Amount,
			Currency: rm.Payment.Currency,
			IntentID: rm.Payment.IntentID,
		},
		LoyaltyPointsAwarded: rm.LoyaltyPointsAwarded,
		CalendarEventID:      rm.CalendarEventID,
		CreatedAt:            rm.CreatedAt,
		UpdatedAt:            rm.UpdatedAt,
	}
}

func FromAppointmentListItem(rm *queries.AppointmentListItem) *AppointmentListItemResponse {
	return &AppointmentListItemResponse{
		ID:              rm.ID,
		CustomerName:    rm.CustomerName,
		ServiceName:     rm.ServiceName,
		LocationName:    rm.LocationName,
		Date:            rm.Date,
		TimeSlot:        rm.TimeSlot,
		DurationMinutes: rm.DurationMinutes,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromBookedSlotView(rm *queries.BookedSlotView) *BookedSlotResponse {
	return &BookedSlotResponse{
		ID:              rm.ID,
		TimeSlot:        rm.TimeSlot,
		DurationMinutes: rm.DurationMinutes,
		ServiceID:       rm.ServiceID,
	}
}
