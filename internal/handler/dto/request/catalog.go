package request

import "bookslot/internal/usecase/commands"

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	Price           int    `json:"price" binding:"required"`
	Category        string `json:"category"`
}

func (r CreateServiceRequest) ToInput() commands.CreateServiceInput {
	return commands.CreateServiceInput{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Category:        r.Category,
	}
}

type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Price           *int    `json:"price,omitempty"`
	Category        *string `json:"category,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

func (r UpdateServiceRequest) ToInput() commands.UpdateServiceInput {
	return commands.UpdateServiceInput{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Category:        r.Category,
		IsActive:        r.IsActive,
	}
}

type CreateLocationRequest struct {
	Name                string `json:"name" binding:"required"`
	Address             string `json:"address"`
	Timezone            string `json:"timezone"`
	SlotIntervalMinutes int    `json:"slotIntervalMinutes" binding:"required"`
}

func (r CreateLocationRequest) ToInput() commands.CreateLocationInput {
	return commands.CreateLocationInput{
		Name:                r.Name,
		Address:             r.Address,
		Timezone:            r.Timezone,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
	}
}

type UpdateLocationRequest struct {
	Name                *string `json:"name,omitempty"`
	Address             *string `json:"address,omitempty"`
	Timezone            *string `json:"timezone,omitempty"`
	SlotIntervalMinutes *int    `json:"slotIntervalMinutes,omitempty"`
	IsActive            *bool   `json:"isActive,omitempty"`
}

func (r UpdateLocationRequest) ToInput() commands.UpdateLocationInput {
	return commands.UpdateLocationInput{
		Name:                r.Name,
		Address:             r.Address,
		Timezone:            r.Timezone,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		IsActive:            r.IsActive,
	}
}
