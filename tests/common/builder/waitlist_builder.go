//go:build unit || e2e

package builder

import (
	"time"

	domappt "bookslot/internal/domain/appointment"
	"bookslot/internal/domain/waitlist"
	reqdto "bookslot/internal/handler/dto/request"
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type WaitlistBuilder struct {
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	ServiceID         uuid.UUID
	ServiceName       string
	LocationID        *uuid.UUID
	Date              string
	PreferredTimeSlot string
}

func NewWaitlistBuilder() *WaitlistBuilder {
	locationID := uuid.New()
	return &WaitlistBuilder{
		CustomerName:      "Sam Waiting",
		CustomerEmail:     "sam@example.com",
		CustomerPhone:     "555-987654",
		ServiceID:         uuid.New(),
		ServiceName:       "Deep Tissue Massage",
		LocationID:        &locationID,
		Date:              "2030-06-15",
		PreferredTimeSlot: "10:00",
	}
}

func (b *WaitlistBuilder) With(mutate func(*WaitlistBuilder)) *WaitlistBuilder {
	mutate(b)
	return b
}

func (b *WaitlistBuilder) BuildDomain() (*waitlist.Entry, error) {
	customer, err := domappt.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	return waitlist.NewEntry(customer, b.ServiceID, b.LocationID, b.Date, b.PreferredTimeSlot)
}

func (b *WaitlistBuilder) BuildEnqueueRequestDTO() reqdto.EnqueueWaitlistRequest {
	return reqdto.EnqueueWaitlistRequest{
		Name:              b.CustomerName,
		Email:             b.CustomerEmail,
		Phone:             b.CustomerPhone,
		ServiceID:         b.ServiceID,
		LocationID:        b.LocationID,
		Date:              b.Date,
		PreferredTimeSlot: b.PreferredTimeSlot,
	}
}

func (b *WaitlistBuilder) BuildView() *queries.WaitlistEntryView {
	slot := b.PreferredTimeSlot
	return &queries.WaitlistEntryView{
		ID: uuid.New(),
		Customer: queries.CustomerView{
			Name:  b.CustomerName,
			Email: b.CustomerEmail,
			Phone: b.CustomerPhone,
		},
		ServiceID:         b.ServiceID,
		ServiceName:       b.ServiceName,
		LocationID:        b.LocationID,
		Date:              b.Date,
		PreferredTimeSlot: &slot,
		Notified:          false,
		CreatedAt:         time.Now(),
	}
}

// Fluent builder methods
func (b *WaitlistBuilder) WithServiceID(serviceID uuid.UUID) *WaitlistBuilder {
	b.ServiceID = serviceID
	return b
}

func (b *WaitlistBuilder) WithLocationID(locationID *uuid.UUID) *WaitlistBuilder {
	b.LocationID = locationID
	return b
}

func (b *WaitlistBuilder) WithDate(date string) *WaitlistBuilder {
	b.Date = date
	return b
}

func (b *WaitlistBuilder) WithPreferredTimeSlot(slot string) *WaitlistBuilder {
	b.PreferredTimeSlot = slot
	return b
}
