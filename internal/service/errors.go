package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventExists          = errors.New("an event with the same title, date and location already exists")
	ErrEventInPast          = errors.New("cannot create event in the past")
	ErrRegistrationClosed   = errors.New("registration closed")
	ErrAlreadyRegistered    = errors.New("already registered")
	ErrRegistrationNotFound = errors.New("registration not found or already cancelled")
	ErrInvalidPhone         = errors.New("phone number must be exactly 10 digits")
)

// TimeConflictError reports which existing commitment blocks a
// registration so the caller can show a precise message.
type TimeConflictError struct {
	EventID  uuid.UUID
	Title    string
	StartsAt time.Time
}

func (e *TimeConflictError) Error() string {
	return fmt.Sprintf("time conflict with %q at %s", e.Title, e.StartsAt.Format("03:04 PM"))
}
