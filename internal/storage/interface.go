package storage

import (
	"context"
	"errors"
	"time"

	"campusevents/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert hits a uniqueness
	// constraint (duplicate event tuple, second active registration).
	ErrDuplicate = errors.New("already exists")
)

type EventStorage interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListEventsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	// DeleteEventCascade removes the event and every registration
	// that references it, in one transaction.
	DeleteEventCascade(ctx context.Context, id uuid.UUID) error
	EventExists(ctx context.Context, title string, startsAt time.Time, location string) (bool, error)
}

type RegistrationStorage interface {
	CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	GetRegistration(ctx context.Context, id uuid.UUID) (domain.Registration, error)
	GetActiveRegistration(ctx context.Context, studentID, eventID uuid.UUID) (domain.Registration, error)
	ListActiveByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.Registration, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.Registration, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error)
	ListRegistrations(ctx context.Context) ([]domain.Registration, error)
	// CancelRegistration flips status to cancelled in a single
	// conditional write and reports whether a row changed.
	CancelRegistration(ctx context.Context, id, studentID uuid.UUID) (bool, error)
}

type NotificationStorage interface {
	CreateNotification(ctx context.Context, n domain.Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (bool, error)
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
