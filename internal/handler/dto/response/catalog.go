package response

import (
	"time"

	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           int       `json:"price"`
	Category        string    `json:"category"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type LocationResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	Timezone            string    `json:"timezone"`
	SlotIntervalMinutes int       `json:"slotIntervalMinutes"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func FromServiceView(rm *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Description:     rm.Description,
		DurationMinutes: rm.DurationMinutes,
		Price:           rm.Price,
		Category:        rm.Category,
		IsActive:        rm.IsActive,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromLocationView(rm *queries.LocationView) *LocationResponse {
	return &LocationResponse{
		ID:                  rm.ID,
		Name:                rm.Name,
		Address:             rm.Address,
		Timezone:            rm.Timezone,
		SlotIntervalMinutes: rm.SlotIntervalMinutes,
		IsActive:            rm.IsActive,
		CreatedAt:           rm.CreatedAt,
		UpdatedAt:           rm.UpdatedAt,
	}
}
