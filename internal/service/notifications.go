package service

import (
	"context"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultNotificationLimit = 50

type NotificationService struct {
	storage storage.NotificationStorage
	log     *logrus.Entry
}

func NewNotificationService(l *logrus.Logger, st storage.NotificationStorage) *NotificationService {
	return &NotificationService{
		storage: st,
		log:     l.WithField("from", "notification-service"),
	}
}

func (s *NotificationService) Create(ctx context.Context, userID uuid.UUID, title, message string, t domain.NotificationType, link string) error {
	return s.storage.CreateNotification(ctx, domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      t,
		Link:      link,
		CreatedAt: time.Now(),
	})
}

// notify is the fire-and-forget variant used for workflow side
// effects: a failed write is logged and never fails the operation
// that triggered it.
func (s *NotificationService) notify(ctx context.Context, userID uuid.UUID, title, message string, t domain.NotificationType, link string) {
	if err := s.Create(ctx, userID, title, message, t, link); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("notification write failed")
	}
}

func (s *NotificationService) ListRecent(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return s.storage.ListNotifications(ctx, userID, limit, unreadOnly)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	return s.storage.MarkNotificationRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.storage.MarkAllNotificationsRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.storage.CountUnread(ctx, userID)
}
