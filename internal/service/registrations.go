package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/schedule"
	"campusevents/internal/storage"
	"campusevents/internal/web/webpath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RegistrationService struct {
	registrations storage.RegistrationStorage
	events        storage.EventStorage
	notifications *NotificationService
	checker       schedule.Checker
	log           *logrus.Entry
}

func NewRegistrationService(
	l *logrus.Logger,
	registrations storage.RegistrationStorage,
	events storage.EventStorage,
	notifications *NotificationService,
	checker schedule.Checker,
) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		events:        events,
		notifications: notifications,
		checker:       checker,
		log:           l.WithField("from", "registration-service"),
	}
}

// Register signs the student up for the event. The checks run twice:
// once up front for a precise error, and once more right before the
// insert to narrow the race window between concurrent requests. The
// partial unique index on active registrations is what actually
// closes the duplicate race; a lost insert surfaces as
// ErrAlreadyRegistered.
func (s *RegistrationService) Register(ctx context.Context, studentID, eventID uuid.UUID, phone, comment string) (domain.Registration, error) {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Registration{}, ErrEventNotFound
		}
		return domain.Registration{}, err
	}
	if event.Past(time.Now()) {
		return domain.Registration{}, ErrRegistrationClosed
	}
	if !validPhone(phone) {
		return domain.Registration{}, ErrInvalidPhone
	}

	if err := s.ensureFree(ctx, studentID, event); err != nil {
		return domain.Registration{}, err
	}
	// second pass right before the write
	if err := s.ensureFree(ctx, studentID, event); err != nil {
		return domain.Registration{}, err
	}

	reg := domain.Registration{
		ID:        uuid.New(),
		EventID:   eventID,
		StudentID: studentID,
		Phone:     phone,
		Comment:   comment,
		Status:    domain.RegistrationStatusActive,
		CreatedAt: time.Now(),
	}
	reg, err = s.registrations.CreateRegistration(ctx, reg)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return domain.Registration{}, ErrAlreadyRegistered
		}
		return domain.Registration{}, err
	}

	s.notifications.notify(ctx, studentID,
		"Event Registration Confirmed",
		fmt.Sprintf("You have successfully registered for %q", event.Title),
		domain.NotificationSuccess,
		webpath.ApiMyRegistrations,
	)
	return reg, nil
}

// ensureFree rejects when the student already holds an active
// registration for this event or for one whose busy window collides.
func (s *RegistrationService) ensureFree(ctx context.Context, studentID uuid.UUID, event domain.Event) error {
	_, err := s.registrations.GetActiveRegistration(ctx, studentID, event.ID)
	if err == nil {
		return ErrAlreadyRegistered
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	active, err := s.registrations.ListActiveByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, 0, len(active))
	for _, reg := range active {
		if reg.EventID == event.ID {
			continue
		}
		ids = append(ids, reg.EventID)
	}
	if len(ids) == 0 {
		return nil
	}
	others, err := s.events.ListEventsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	busy := make([]schedule.Busy, 0, len(others))
	for _, other := range others {
		busy = append(busy, schedule.Busy{
			EventID:  other.ID,
			Title:    other.Title,
			StartsAt: other.StartsAt,
		})
	}
	if conflict, ok := s.checker.FindConflict(event.StartsAt, busy); ok {
		return &TimeConflictError{
			EventID:  conflict.EventID,
			Title:    conflict.Title,
			StartsAt: conflict.StartsAt,
		}
	}
	return nil
}

// Cancel flips the student's active registration to cancelled. The
// status change itself is one conditional write, so two concurrent
// cancels cannot both succeed.
func (s *RegistrationService) Cancel(ctx context.Context, id, studentID uuid.UUID) error {
	reg, err := s.registrations.GetRegistration(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRegistrationNotFound
		}
		return err
	}
	if reg.StudentID != studentID || !reg.Active() {
		return ErrRegistrationNotFound
	}
	ok, err := s.registrations.CancelRegistration(ctx, id, studentID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRegistrationNotFound
	}

	title := "Unknown Event"
	if event, err := s.events.GetEvent(ctx, reg.EventID); err == nil {
		title = event.Title
	}
	s.notifications.notify(ctx, studentID,
		"Registration Cancelled",
		fmt.Sprintf("Your registration for %q has been cancelled.", title),
		domain.NotificationWarning,
		webpath.ApiEvents,
	)
	return nil
}

// ListByStudent returns the student's registrations with event
// details attached, active ones first.
func (s *RegistrationService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.Registration, error) {
	regs, err := s.registrations.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.attachEvents(ctx, regs)
}

func (s *RegistrationService) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error) {
	return s.registrations.ListByEvent(ctx, eventID)
}

func (s *RegistrationService) ListAll(ctx context.Context) ([]domain.Registration, error) {
	regs, err := s.registrations.ListRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachEvents(ctx, regs)
}

func (s *RegistrationService) attachEvents(ctx context.Context, regs []domain.Registration) ([]domain.Registration, error) {
	if len(regs) == 0 {
		return regs, nil
	}
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(regs))
	for _, reg := range regs {
		if _, ok := seen[reg.EventID]; ok {
			continue
		}
		seen[reg.EventID] = struct{}{}
		ids = append(ids, reg.EventID)
	}
	events, err := s.events.ListEventsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Event, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}
	for i := range regs {
		regs[i].Event = byID[regs[i].EventID]
	}
	return regs, nil
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
