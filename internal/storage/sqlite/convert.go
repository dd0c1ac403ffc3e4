package sqlite

import (
	"campusevents/gen/model"
	"campusevents/internal/domain"

	"github.com/google/uuid"
)

func convertEventToDomain(event model.Events) (domain.Event, error) {
	id, err := uuid.Parse(event.ID)
	if err != nil {
		return domain.Event{}, err
	}
	createdBy, err := uuid.Parse(event.CreatedBy)
	if err != nil {
		return domain.Event{}, err
	}
	return domain.Event{
		ID:          id,
		Title:       event.Title,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		Location:    event.Location,
		CreatedBy:   createdBy,
		Status:      event.Status,
		CreatedAt:   event.CreatedAt,
	}, nil
}

func convertEventsToDomain(events []model.Events) []domain.Event {
	converted := make([]domain.Event, 0, len(events))
	for _, event := range events {
		e, err := convertEventToDomain(event)
		if err != nil {
			continue
		}
		converted = append(converted, e)
	}
	return converted
}

func convertEventFromDomain(event domain.Event) model.Events {
	return model.Events{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		Location:    event.Location,
		CreatedBy:   event.CreatedBy.String(),
		Status:      event.Status,
		CreatedAt:   event.CreatedAt,
	}
}

func convertRegistrationToDomain(reg model.Registrations) (domain.Registration, error) {
	id, err := uuid.Parse(reg.ID)
	if err != nil {
		return domain.Registration{}, err
	}
	eventID, err := uuid.Parse(reg.EventID)
	if err != nil {
		return domain.Registration{}, err
	}
	studentID, err := uuid.Parse(reg.StudentID)
	if err != nil {
		return domain.Registration{}, err
	}
	return domain.Registration{
		ID:        id,
		EventID:   eventID,
		StudentID: studentID,
		Phone:     reg.Phone,
		Comment:   reg.Comment,
		Status:    reg.Status,
		CreatedAt: reg.CreatedAt,
	}, nil
}

func convertRegistrationsToDomain(regs []model.Registrations) ([]domain.Registration, error) {
	converted := make([]domain.Registration, 0, len(regs))
	for _, reg := range regs {
		r, err := convertRegistrationToDomain(reg)
		if err != nil {
			return nil, err
		}
		converted = append(converted, r)
	}
	return converted, nil
}

func convertRegistrationFromDomain(reg domain.Registration) model.Registrations {
	return model.Registrations{
		ID:        reg.ID.String(),
		EventID:   reg.EventID.String(),
		StudentID: reg.StudentID.String(),
		Phone:     reg.Phone,
		Comment:   reg.Comment,
		Status:    reg.Status,
		CreatedAt: reg.CreatedAt,
	}
}

func convertNotificationToDomain(n model.Notifications) (domain.Notification, error) {
	id, err := uuid.Parse(n.ID)
	if err != nil {
		return domain.Notification{}, err
	}
	userID, err := uuid.Parse(n.UserID)
	if err != nil {
		return domain.Notification{}, err
	}
	var link string
	if n.Link != nil {
		link = *n.Link
	}
	return domain.Notification{
		ID:        id,
		UserID:    userID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      domain.NotificationType(n.Type),
		Link:      link,
		Read:      n.IsRead,
		CreatedAt: n.CreatedAt,
	}, nil
}

func convertNotificationsToDomain(notifications []model.Notifications) ([]domain.Notification, error) {
	converted := make([]domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		d, err := convertNotificationToDomain(n)
		if err != nil {
			return nil, err
		}
		converted = append(converted, d)
	}
	return converted, nil
}

func convertNotificationFromDomain(n domain.Notification) model.Notifications {
	var link *string
	if n.Link != "" {
		link = &n.Link
	}
	return model.Notifications{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Link:      link,
		IsRead:    n.Read,
		CreatedAt: n.CreatedAt,
	}
}
