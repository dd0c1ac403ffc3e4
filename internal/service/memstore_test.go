package service

import (
	"context"
	"sort"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/storage"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the sqlite storage. It
// enforces the same uniqueness rules the real schema does so the
// workflow tests exercise the constraint paths too.
type memStore struct {
	events        map[uuid.UUID]domain.Event
	registrations map[uuid.UUID]domain.Registration
	notifications []domain.Notification
}

func newMemStore() *memStore {
	return &memStore{
		events:        make(map[uuid.UUID]domain.Event),
		registrations: make(map[uuid.UUID]domain.Registration),
	}
}

var _ storage.EventStorage = (*memStore)(nil)
var _ storage.RegistrationStorage = (*memStore)(nil)
var _ storage.NotificationStorage = (*memStore)(nil)

func (m *memStore) ListEvents(context.Context) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(m.events))
	for _, e := range m.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	return events, nil
}

func (m *memStore) ListEventsByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Event, error) {
	var events []domain.Event
	for _, id := range ids {
		if e, ok := m.events[id]; ok {
			events = append(events, e)
		}
	}
	return events, nil
}

func (m *memStore) GetEvent(_ context.Context, id uuid.UUID) (domain.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return domain.Event{}, storage.ErrNotFound
	}
	return e, nil
}

func (m *memStore) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	for _, e := range m.events {
		if e.Title == event.Title && e.Location == event.Location && e.StartsAt.Equal(event.StartsAt) {
			return domain.Event{}, storage.ErrDuplicate
		}
	}
	m.events[event.ID] = event
	return event, nil
}

func (m *memStore) UpdateEvent(_ context.Context, event domain.Event) error {
	if _, ok := m.events[event.ID]; !ok {
		return storage.ErrNotFound
	}
	for _, e := range m.events {
		if e.ID != event.ID && e.Title == event.Title && e.Location == event.Location && e.StartsAt.Equal(event.StartsAt) {
			return storage.ErrDuplicate
		}
	}
	m.events[event.ID] = event
	return nil
}

func (m *memStore) DeleteEventCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := m.events[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.events, id)
	for regID, reg := range m.registrations {
		if reg.EventID == id {
			delete(m.registrations, regID)
		}
	}
	return nil
}

func (m *memStore) EventExists(_ context.Context, title string, startsAt time.Time, location string) (bool, error) {
	for _, e := range m.events {
		if e.Title == title && e.Location == location && e.StartsAt.Equal(startsAt) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateRegistration(_ context.Context, reg domain.Registration) (domain.Registration, error) {
	for _, r := range m.registrations {
		if r.StudentID == reg.StudentID && r.EventID == reg.EventID && r.Active() {
			return domain.Registration{}, storage.ErrDuplicate
		}
	}
	m.registrations[reg.ID] = reg
	return reg, nil
}

func (m *memStore) GetRegistration(_ context.Context, id uuid.UUID) (domain.Registration, error) {
	r, ok := m.registrations[id]
	if !ok {
		return domain.Registration{}, storage.ErrNotFound
	}
	return r, nil
}

func (m *memStore) GetActiveRegistration(_ context.Context, studentID, eventID uuid.UUID) (domain.Registration, error) {
	for _, r := range m.registrations {
		if r.StudentID == studentID && r.EventID == eventID && r.Active() {
			return r, nil
		}
	}
	return domain.Registration{}, storage.ErrNotFound
}

func (m *memStore) ListActiveByStudent(_ context.Context, studentID uuid.UUID) ([]domain.Registration, error) {
	var regs []domain.Registration
	for _, r := range m.registrations {
		if r.StudentID == studentID && r.Active() {
			regs = append(regs, r)
		}
	}
	return regs, nil
}

func (m *memStore) ListByStudent(_ context.Context, studentID uuid.UUID) ([]domain.Registration, error) {
	var regs []domain.Registration
	for _, r := range m.registrations {
		if r.StudentID == studentID {
			regs = append(regs, r)
		}
	}
	return regs, nil
}

func (m *memStore) ListByEvent(_ context.Context, eventID uuid.UUID) ([]domain.Registration, error) {
	var regs []domain.Registration
	for _, r := range m.registrations {
		if r.EventID == eventID {
			regs = append(regs, r)
		}
	}
	return regs, nil
}

func (m *memStore) ListRegistrations(context.Context) ([]domain.Registration, error) {
	regs := make([]domain.Registration, 0, len(m.registrations))
	for _, r := range m.registrations {
		regs = append(regs, r)
	}
	return regs, nil
}

func (m *memStore) CancelRegistration(_ context.Context, id, studentID uuid.UUID) (bool, error) {
	r, ok := m.registrations[id]
	if !ok || r.StudentID != studentID || !r.Active() {
		return false, nil
	}
	r.Status = domain.RegistrationStatusCancelled
	m.registrations[id] = r
	return true, nil
}

func (m *memStore) CreateNotification(_ context.Context, n domain.Notification) error {
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *memStore) ListNotifications(_ context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) MarkNotificationRead(_ context.Context, id, userID uuid.UUID) (bool, error) {
	for i, n := range m.notifications {
		if n.ID == id && n.UserID == userID && !n.Read {
			m.notifications[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) MarkAllNotificationsRead(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for i, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			m.notifications[i].Read = true
			count++
		}
	}
	return count, nil
}

func (m *memStore) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}
