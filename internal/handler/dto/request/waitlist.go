package request

import (
	"bookslot/internal/usecase/commands"

	"github.com/google/uuid"
)

type EnqueueWaitlistRequest struct {
	Customer          *CustomerPayload `json:"customer,omitempty"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	ServiceID         uuid.UUID        `json:"serviceId" binding:"required"`
	LocationID        *uuid.UUID       `json:"locationId,omitempty"`
	Date              string           `json:"date" binding:"required"`
	PreferredTimeSlot string           `json:"preferredTimeSlot"`
}

func (r EnqueueWaitlistRequest) ToInput() commands.EnqueueWaitlistInput {
	name, email, phone := r.Name, r.Email, r.Phone
	if r.Customer != nil {
		name, email, phone = r.Customer.Name, r.Customer.Email, r.Customer.Phone
	}
	return commands.EnqueueWaitlistInput{
		CustomerName:      name,
		CustomerEmail:     email,
		CustomerPhone:     phone,
		ServiceID:         r.ServiceID,
		LocationID:        r.LocationID,
		Date:              r.Date,
		PreferredTimeSlot: r.PreferredTimeSlot,
	}
}
