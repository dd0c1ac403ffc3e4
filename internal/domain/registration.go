package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RegistrationStatusActive    = "active"
	RegistrationStatusCancelled = "cancelled"
)

type Registration struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	StudentID uuid.UUID
	Phone     string
	Comment   string
	Status    string
	CreatedAt time.Time

	// Event is filled by lookups that join event details in,
	// zero value otherwise.
	Event Event
}

func (r Registration) Active() bool {
	return r.Status == RegistrationStatusActive
}
