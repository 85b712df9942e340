package request

import (
	"bookslot/internal/usecase/commands"

	"github.com/google/uuid"
)

// CustomerPayload is the nested customer form. Clients may also send the
// same fields flat at the top level; the nested object wins when both are
// present.
type CustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateAppointmentRequest struct {
	Customer           *CustomerPayload `json:"customer,omitempty"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	ServiceID          uuid.UUID        `json:"serviceId" binding:"required"`
	LocationID         uuid.UUID        `json:"locationId" binding:"required"`
	Date               string           `json:"date" binding:"required"`
	TimeSlot           string           `json:"timeSlot" binding:"required"`
	Notes              string           `json:"notes"`
	PaymentIntentID    string           `json:"paymentIntentId"`
	ApplyLoyaltyPoints int              `json:"applyLoyaltyPoints"`
	JoinWaitlistIfFull bool             `json:"joinWaitlistIfFull"`
}

func (r CreateAppointmentRequest) NormalizedCustomer() (name, email, phone string) {
	if r.Customer != nil {
		return r.Customer.Name, r.Customer.Email, r.Customer.Phone
	}
	return r.Name, r.Email, r.Phone
}

func (r CreateAppointmentRequest) ToInput(userID *uuid.UUID) commands.CreateAppointmentInput {
	name, email, phone := r.NormalizedCustomer()
	return commands.CreateAppointmentInput{
		CustomerName:    name,
		CustomerEmail:   email,
		CustomerPhone:   phone,
		ServiceID:       r.ServiceID,
		LocationID:      r.LocationID,
		Date:            r.Date,
		TimeSlot:        r.TimeSlot,
		Notes:           r.Notes,
		UserID:          userID,
		PaymentIntentID: r.PaymentIntentID,
		RedeemPoints:    r.ApplyLoyaltyPoints,
		JoinWaitlist:    r.JoinWaitlistIfFull,
	}
}

type UpdateAppointmentRequest struct {
	Customer        *CustomerPayload `json:"customer,omitempty"`
	Name            *string          `json:"name,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	ServiceID       *uuid.UUID       `json:"serviceId,omitempty"`
	LocationID      *uuid.UUID       `json:"locationId,omitempty"`
	Date            *string          `json:"date,omitempty"`
	TimeSlot        *string          `json:"timeSlot,omitempty"`
	DurationMinutes *int             `json:"durationMinutes,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	Status          *string          `json:"status,omitempty"`
}

func (r UpdateAppointmentRequest) ToInput() commands.UpdateAppointmentInput {
	in := commands.UpdateAppointmentInput{
		CustomerName:    r.Name,
		CustomerEmail:   r.Email,
		CustomerPhone:   r.Phone,
		ServiceID:       r.ServiceID,
		LocationID:      r.LocationID,
		Date:            r.Date,
		TimeSlot:        r.TimeSlot,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Status:          r.Status,
	}
	if r.Customer != nil {
		name, email, phone := r.Customer.Name, r.Customer.Email, r.Customer.Phone
		in.CustomerName = &name
		in.CustomerEmail = &email
		in.CustomerPhone = &phone
	}
	return in
}
