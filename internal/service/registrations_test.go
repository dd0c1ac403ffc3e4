package service

import (
	"context"
	"testing"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/schedule"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(store *memStore) (*RegistrationService, *NotificationService) {
	log := logrus.New()
	notifications := NewNotificationService(log, store)
	regs := NewRegistrationService(log, store, store, notifications, schedule.NewChecker(schedule.Config{}))
	return regs, notifications
}

func addEvent(store *memStore, title string, startsAt time.Time) domain.Event {
	event := domain.Event{
		ID:        uuid.New(),
		Title:     title,
		StartsAt:  startsAt,
		Location:  "Main Hall",
		CreatedBy: uuid.New(),
		Status:    domain.EventStatusActive,
		CreatedAt: time.Now(),
	}
	store.events[event.ID] = event
	return event
}

func tomorrowAt(hour, min int) time.Time {
	t := time.Now().AddDate(0, 0, 1)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, t.Location())
}

func TestRegisterCreatesSingleActiveRegistration(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)
	event := addEvent(store, "Tech Talk", tomorrowAt(10, 0))
	student := uuid.New()

	reg, err := svc.Register(context.Background(), student, event.ID, "1234567890", "see you there")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusActive, reg.Status)

	active, err := store.ListActiveByStudent(context.Background(), student)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, event.ID, active[0].EventID)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)
	event := addEvent(store, "Tech Talk", tomorrowAt(10, 0))
	student := uuid.New()

	_, err := svc.Register(context.Background(), student, event.ID, "1234567890", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), student, event.ID, "1234567890", "")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	active, err := store.ListActiveByStudent(context.Background(), student)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestRegisterTimeConflict(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)
	morning := addEvent(store, "Morning Seminar", tomorrowAt(10, 0))
	overlapping := addEvent(store, "Midday Workshop", tomorrowAt(11, 30))
	afternoon := addEvent(store, "Afternoon Meetup", tomorrowAt(14, 0))
	student := uuid.New()

	_, err := svc.Register(context.Background(), student, morning.ID, "1234567890", "")
	require.NoError(t, err)

	// windows [09:00,12:00] and [10:30,13:30] overlap
	_, err = svc.Register(context.Background(), student, overlapping.ID, "1234567890", "")
	var conflict *TimeConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, morning.ID, conflict.EventID)
	assert.Equal(t, "Morning Seminar", conflict.Title)

	// window [13:00,16:00] touches [09:00,12:00] nowhere
	_, err = svc.Register(context.Background(), student, afternoon.ID, "1234567890", "")
	assert.NoError(t, err)
}

func TestRegisterAfterCancelSucceeds(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)
	event := addEvent(store, "Tech Talk", tomorrowAt(10, 0))
	student := uuid.New()

	reg, err := svc.Register(context.Background(), student, event.ID, "1234567890", "")
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(context.Background(), reg.ID, student))

	_, err = svc.Register(context.Background(), student, event.ID, "1234567890", "")
	assert.NoError(t, err)
}

func TestRegisterPhoneValidation(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)
	event := addEvent(store, "Tech Talk", tomorrowAt(10, 0))

	tests := []struct {
		phone string
		valid bool
	}{
		{"1234567890", true},
		{"12345", false},
		{"", false},
		{"12345678901", false},
		{"12345abcde", false},
	}
	for _, tt := range tests {
		_, err := svc.Register(context.Background(), uuid.New(), event.ID, tt.phone, "")
		if tt.valid {
			assert.NoError(t, err, "phone %q", tt.phone)
		} else {
			assert.ErrorIs(t, err, ErrInvalidPhone, "phone %q", tt.phone)
		}
	}
}

func TestRegisterClosedForPastEvent(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)
	past := addEvent(store, "Old Lecture", time.Now().AddDate(0, 0, -2))

	_, err := svc.Register(context.Background(), uuid.New(), past.ID, "1234567890", "")
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestRegisterUnknownEvent(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)

	_, err := svc.Register(context.Background(), uuid.New(), uuid.New(), "1234567890", "")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRegisterEmitsSuccessNotification(t *testing.T) {
	store := newMemStore()
	svc, notifications := newTestServices(store)
	event := addEvent(store, "Tech Talk", tomorrowAt(10, 0))
	student := uuid.New()

	_, err := svc.Register(context.Background(), student, event.ID, "1234567890", "")
	require.NoError(t, err)

	list, err := notifications.ListRecent(context.Background(), student, 10, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.NotificationSuccess, list[0].Type)
	assert.Equal(t, "Event Registration Confirmed", list[0].Title)
}

func TestCancel(t *testing.T) {
	store := newMemStore()
	svc, notifications := newTestServices(store)
	event := addEvent(store, "Tech Talk", tomorrowAt(10, 0))
	student := uuid.New()

	reg, err := svc.Register(context.Background(), student, event.ID, "1234567890", "")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), reg.ID, student))
	stored, err := store.GetRegistration(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusCancelled, stored.Status)

	list, err := notifications.ListRecent(context.Background(), student, 10, false)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// second cancel must reject and change nothing
	err = svc.Cancel(context.Background(), reg.ID, student)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestCancelUnknownRegistration(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)

	err := svc.Cancel(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestCancelWrongOwner(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)
	event := addEvent(store, "Tech Talk", tomorrowAt(10, 0))
	owner := uuid.New()

	reg, err := svc.Register(context.Background(), owner, event.ID, "1234567890", "")
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), reg.ID, uuid.New())
	assert.ErrorIs(t, err, ErrRegistrationNotFound)

	stored, err := store.GetRegistration(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active())
}

func TestListByStudentAttachesEvents(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestServices(store)
	event := addEvent(store, "Tech Talk", tomorrowAt(10, 0))
	student := uuid.New()

	_, err := svc.Register(context.Background(), student, event.ID, "1234567890", "")
	require.NoError(t, err)

	regs, err := svc.ListByStudent(context.Background(), student)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "Tech Talk", regs[0].Event.Title)
}
