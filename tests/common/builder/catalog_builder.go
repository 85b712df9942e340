//go:build unit || e2e

package builder

import (
	"time"

	"bookslot/internal/domain/catalog"
	reqdto "bookslot/internal/handler/dto/request"
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           int
	Category        string
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		Name:            "Deep Tissue Massage",
		Description:     "A 60 minute session",
		DurationMinutes: 60,
		Price:           120,
		Category:        "massage",
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	return catalog.NewService(b.Name, b.Description, b.DurationMinutes, b.Price, b.Category)
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:            b.Name,
		Description:     b.Description,
		DurationMinutes: b.DurationMinutes,
		Price:           b.Price,
		Category:        b.Category,
	}
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	now := time.Now()
	return &queries.ServiceView{
		ID:              uuid.New(),
		Name:            b.Name,
		Description:     b.Description,
		DurationMinutes: b.DurationMinutes,
		Price:           b.Price,
		Category:        b.Category,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type LocationBuilder struct {
	Name                string
	Address             string
	Timezone            string
	SlotIntervalMinutes int
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{
		Name:                "Downtown Studio",
		Address:             "1 Main St",
		Timezone:            "UTC",
		SlotIntervalMinutes: 30,
	}
}

func (b *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(b)
	return b
}

func (b *LocationBuilder) BuildDomain() (*catalog.Location, error) {
	return catalog.NewLocation(b.Name, b.Address, b.SlotIntervalMinutes)
}

func (b *LocationBuilder) BuildCreateRequestDTO() reqdto.CreateLocationRequest {
	return reqdto.CreateLocationRequest{
		Name:                b.Name,
		Address:             b.Address,
		Timezone:            b.Timezone,
		SlotIntervalMinutes: b.SlotIntervalMinutes,
	}
}

func (b *LocationBuilder) BuildView() *queries.LocationView {
	now := time.Now()
	return &queries.LocationView{
		ID:                  uuid.New(),
		Name:                b.Name,
		Address:             b.Address,
		Timezone:            b.Timezone,
		SlotIntervalMinutes: b.SlotIntervalMinutes,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
