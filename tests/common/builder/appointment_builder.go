//go:build unit || e2e

package builder

import (
	"time"

	domappt "bookslot/internal/domain/appointment"
	"bookslot/internal/domain/catalog"
	"bookslot/internal/pkg/clock"
	reqdto "bookslot/internal/handler/dto/request"
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	UserID          *uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	DurationMinutes int
	Price           int
	LocationID      uuid.UUID
	LocationName    string
	Date            string
	TimeSlot        string
	Notes           string
	PaymentIntentID string
	Currency        string
	Now             time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "555-123456",
		ServiceID:       uuid.New(),
		ServiceName:     "Deep Tissue Massage",
		DurationMinutes: 60,
		Price:           120,
		LocationID:      uuid.New(),
		LocationName:    "Downtown Studio",
		Date:            "2030-06-15",
		TimeSlot:        "10:00",
		Currency:        "usd",
		Now:             time.Date(2030, 6, 1, 9, 0, 0, 0, time.Local),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	customer, err := domappt.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	return domappt.NewAppointment(
		&domappt.Services{Clock: clock.NewMockClock(b.Now)},
		customer,
		b.UserID,
		b.BuildService(),
		b.LocationID,
		b.Date,
		b.TimeSlot,
		b.Notes,
		b.PaymentIntentID,
		b.Currency,
	)
}

func (b *AppointmentBuilder) BuildService() *catalog.Service {
	return &catalog.Service{
		ID:              b.ServiceID,
		Name:            b.ServiceName,
		DurationMinutes: b.DurationMinutes,
		Price:           b.Price,
		Category:        "general",
		IsActive:        true,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		Name:       b.CustomerName,
		Email:      b.CustomerEmail,
		Phone:      b.CustomerPhone,
		ServiceID:  b.ServiceID,
		LocationID: b.LocationID,
		Date:       b.Date,
		TimeSlot:   b.TimeSlot,
		Notes:      b.Notes,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID: uuid.New(),
		Customer: queries.CustomerView{
			Name:  b.CustomerName,
			Email: b.CustomerEmail,
			Phone: b.CustomerPhone,
		},
		UserID:    b.UserID,
		ServiceID: b.ServiceID,
		ServiceSnapshot: queries.ServiceSnapshotView{
			Name:            b.ServiceName,
			DurationMinutes: b.DurationMinutes,
			Price:           b.Price,
		},
		LocationID:      b.LocationID,
		LocationName:    b.LocationName,
		Date:            b.Date,
		TimeSlot:        b.TimeSlot,
		DurationMinutes: b.DurationMinutes,
		Status:          "scheduled",
		Payment: queries.PaymentView{
			Status:   "not_required",
			Amount:   b.Price,
			Currency: b.Currency,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:              uuid.New(),
		CustomerName:    b.CustomerName,
		ServiceName:     b.ServiceName,
		LocationName:    b.LocationName,
		Date:            b.Date,
		TimeSlot:        b.TimeSlot,
		DurationMinutes: b.DurationMinutes,
		Status:          "scheduled",
		CreatedAt:       time.Now(),
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithCustomer(name, email, phone string) *AppointmentBuilder {
	b.CustomerName = name
	b.CustomerEmail = email
	b.CustomerPhone = phone
	return b
}

func (b *AppointmentBuilder) WithUserID(userID uuid.UUID) *AppointmentBuilder {
	b.UserID = &userID
	return b
}

func (b *AppointmentBuilder) WithServiceID(serviceID uuid.UUID) *AppointmentBuilder {
	b.ServiceID = serviceID
	return b
}

func (b *AppointmentBuilder) WithLocationID(locationID uuid.UUID) *AppointmentBuilder {
	b.LocationID = locationID
	return b
}

func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithTimeSlot(timeSlot string) *AppointmentBuilder {
	b.TimeSlot = timeSlot
	return b
}

func (b *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	b.Notes = notes
	return b
}

func (b *AppointmentBuilder) WithNow(now time.Time) *AppointmentBuilder {
	b.Now = now
	return b
}
