package request

import "github.com/google/uuid"

type CreateIntentRequest struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
}
