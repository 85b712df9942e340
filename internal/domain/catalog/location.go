package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidLocationName = errors.New("location name must be 2-120 characters")
	ErrInvalidSlotInterval = errors.New("slot interval must be between 15 and 240 minutes")
)

const (
	MinSlotIntervalMinutes     = 15
	MaxSlotIntervalMinutes     = 240
	DefaultSlotIntervalMinutes = 60
)

// Location is a place where services are rendered. Each location runs on
// its own local clock; the engine never converts between timezones.
type Location struct {
	ID                  uuid.UUID
	Name                string
	Address             string
	SlotIntervalMinutes int
	IsActive            bool
}

func NewLocation(name, address string, slotIntervalMinutes int) (*Location, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 120 {
		return nil, ErrInvalidLocationName
	}
	if slotIntervalMinutes == 0 {
		slotIntervalMinutes = DefaultSlotIntervalMinutes
	}
	if slotIntervalMinutes < MinSlotIntervalMinutes || slotIntervalMinutes > MaxSlotIntervalMinutes {
		return nil, ErrInvalidSlotInterval
	}

	return &Location{
		ID:                  uuid.New(),
		Name:                name,
		Address:             strings.TrimSpace(address),
		SlotIntervalMinutes: slotIntervalMinutes,
		IsActive:            true,
	}, nil
}

func (l *Location) Available() bool {
	return l != nil && l.IsActive
}
