package response

import (
	"time"

	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type WaitlistEntryResponse struct {
	ID                uuid.UUID        `json:"id"`
	Customer          CustomerResponse `json:"customer"`
	ServiceID         uuid.UUID        `json:"serviceId"`
	ServiceName       string           `json:"serviceName"`
	LocationID        *uuid.UUID       `json:"locationId,omitempty"`
	Date              string           `json:"date"`
	PreferredTimeSlot *string          `json:"preferredTimeSlot,omitempty"`
	Notified          bool             `json:"notified"`
	CreatedAt         time.Time        `json:"createdAt"`
}

type WaitlistListResponse struct {
	Entries    []*WaitlistEntryResponse `json:"entries"`
	NextCursor *string                  `json:"nextCursor,omitempty"`
}

func FromWaitlistEntryView(rm *queries.WaitlistEntryView) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		ID: rm.ID,
		Customer: CustomerResponse{
			Name:  rm.Customer.Name,
			Email: rm.Customer.Email,
			Phone: rm.Customer.Phone,
		},
		ServiceID:         rm.ServiceID,
		ServiceName:       rm.ServiceName,
		LocationID:        rm.LocationID,
		Date:              rm.Date,
		PreferredTimeSlot: rm.PreferredTimeSlot,
		Notified:          rm.Notified,
		CreatedAt:         rm.CreatedAt,
	}
}
