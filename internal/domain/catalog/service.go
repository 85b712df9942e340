package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceName = errors.New("service name must be 2-120 characters")
	ErrInvalidDuration    = errors.New("duration must be between 15 and 480 minutes")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 480
)

// Service is a bookable offering. Appointments never reference it live:
// they freeze a snapshot at booking time so later catalog edits cannot
// rewrite history.
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Price           int
	Category        string
	IsActive        bool
}

func NewService(name, description string, durationMinutes, price int, category string) (*Service, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 120 {
		return nil, ErrInvalidServiceName
	}
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return nil, ErrInvalidDuration
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Service{
		ID:              uuid.New(),
		Name:            name,
		Description:     strings.TrimSpace(description),
		DurationMinutes: durationMinutes,
		Price:           price,
		Category:        strings.TrimSpace(category),
		IsActive:        true,
	}, nil
}

// Available reports whether the service can be booked right now.
func (s *Service) Available() bool {
	return s != nil && s.IsActive
}
