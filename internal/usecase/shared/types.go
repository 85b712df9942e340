package shared

import (
	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Price           int
	Category        string
	IsActive        bool
}

type LocationSnapshot struct {
	ID                  uuid.UUID
	Name                string
	Address             string
	Timezone            string
	SlotIntervalMinutes int
	IsActive            bool
}

type UserSnapshot struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  string
	Role          string
	Phone         string
	LoyaltyPoints int
	IsActive      bool
}

// SlotSnapshot is the minimal occupancy record the conflict resolver needs.
type SlotSnapshot struct {
	ID              uuid.UUID
	StartMinutes    int
	DurationMinutes int
}
