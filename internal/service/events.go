package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/storage"
	"campusevents/internal/web/webpath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Announcer fans a fresh event out to an external channel. The bot
// implements it; the hook is optional and must never block or fail
// the workflow.
type Announcer interface {
	AnnounceEvent(event domain.Event)
}

type EventService struct {
	events        storage.EventStorage
	notifications *NotificationService
	announcer     Announcer
	log           *logrus.Entry
}

func NewEventService(l *logrus.Logger, events storage.EventStorage, notifications *NotificationService) *EventService {
	return &EventService{
		events:        events,
		notifications: notifications,
		log:           l.WithField("from", "event-service"),
	}
}

// SetAnnouncer wires the optional broadcast channel after
// construction, once the bot is up.
func (s *EventService) SetAnnouncer(a Announcer) {
	s.announcer = a
}

func (s *EventService) Create(ctx context.Context, createdBy uuid.UUID, title, description string, startsAt time.Time, location string) (domain.Event, error) {
	if startsAt.Before(time.Now()) {
		return domain.Event{}, ErrEventInPast
	}
	exists, err := s.events.EventExists(ctx, title, startsAt, location)
	if err != nil {
		return domain.Event{}, err
	}
	if exists {
		return domain.Event{}, ErrEventExists
	}
	event := domain.Event{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		StartsAt:    startsAt,
		Location:    location,
		CreatedBy:   createdBy,
		Status:      domain.EventStatusActive,
		CreatedAt:   time.Now(),
	}
	event, err = s.events.CreateEvent(ctx, event)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return domain.Event{}, ErrEventExists
		}
		return domain.Event{}, err
	}
	s.notifications.notify(ctx, createdBy,
		"Event Created",
		fmt.Sprintf("Event %q has been created successfully", event.Title),
		domain.NotificationSuccess,
		webpath.ApiEvents,
	)
	if s.announcer != nil {
		s.announcer.AnnounceEvent(event)
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id uuid.UUID, title, description string, startsAt time.Time, location string) error {
	event, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	event.Title = title
	event.Description = description
	event.StartsAt = startsAt
	event.Location = location
	err = s.events.UpdateEvent(ctx, event)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrEventNotFound
	case errors.Is(err, storage.ErrDuplicate):
		return ErrEventExists
	}
	return err
}

// Delete removes the event together with every registration that
// references it, active or cancelled.
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.events.DeleteEventCascade(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrEventNotFound
	}
	return err
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	event, err := s.events.GetEvent(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Event{}, ErrEventNotFound
	}
	return event, err
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.ListEvents(ctx)
}

// Upcoming returns up to limit events starting within the window,
// soonest first.
func (s *EventService) Upcoming(ctx context.Context, window time.Duration, limit int) ([]domain.Event, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	until := now.Add(window)
	upcoming := make([]domain.Event, 0, limit)
	for _, event := range events {
		if event.StartsAt.Before(now) || event.StartsAt.After(until) {
			continue
		}
		upcoming = append(upcoming, event)
		if len(upcoming) == limit {
			break
		}
	}
	return upcoming, nil
}
