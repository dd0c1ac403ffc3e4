package domain

import (
	"time"

	"github.com/google/uuid"
)

const EventStatusActive = "active"

type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	StartsAt    time.Time
	Location    string
	CreatedBy   uuid.UUID
	Status      string
	CreatedAt   time.Time
}

// Past reports whether the event date is already behind us.
func (e Event) Past(now time.Time) bool {
	y1, m1, d1 := e.StartsAt.Date()
	y2, m2, d2 := now.Date()
	eventDay := time.Date(y1, m1, d1, 0, 0, 0, 0, now.Location())
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, now.Location())
	return eventDay.Before(today)
}
