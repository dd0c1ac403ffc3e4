package service

import (
	"context"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationService(store *memStore) *NotificationService {
	return NewNotificationService(logrus.New(), store)
}

func addNotification(store *memStore, userID uuid.UUID, title string, createdAt time.Time, read bool) domain.Notification {
	n := domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   title,
		Type:      domain.NotificationInfo,
		Read:      read,
		CreatedAt: createdAt,
	}
	store.notifications = append(store.notifications, n)
	return n
}

func TestListRecentNewestFirst(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	user := uuid.New()
	now := time.Now()
	addNotification(store, user, "oldest", now.Add(-2*time.Hour), false)
	addNotification(store, user, "newest", now, false)
	addNotification(store, user, "middle", now.Add(-time.Hour), false)
	addNotification(store, uuid.New(), "someone else", now, false)

	list, err := svc.ListRecent(context.Background(), user, 0, false)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].Title)
	assert.Equal(t, "middle", list[1].Title)
	assert.Equal(t, "oldest", list[2].Title)

	limited, err := svc.ListRecent(context.Background(), user, 2, false)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "newest", limited[0].Title)
}

func TestListRecentUnreadOnly(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	user := uuid.New()
	now := time.Now()
	addNotification(store, user, "seen", now.Add(-time.Minute), true)
	unread := addNotification(store, user, "fresh", now, false)

	list, err := svc.ListRecent(context.Background(), user, 0, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, unread.ID, list[0].ID)
}

func TestMarkRead(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	user := uuid.New()
	n := addNotification(store, user, "fresh", time.Now(), false)

	ok, err := svc.MarkRead(context.Background(), n.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok, "must not mark another user's notification")

	ok, err = svc.MarkRead(context.Background(), n.ID, user)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.MarkRead(context.Background(), n.ID, user)
	require.NoError(t, err)
	assert.False(t, ok, "already read")
}

func TestMarkAllReadAndUnreadCount(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	user := uuid.New()
	now := time.Now()
	addNotification(store, user, "a", now, false)
	addNotification(store, user, "b", now, false)
	addNotification(store, user, "c", now, true)
	addNotification(store, uuid.New(), "other", now, false)

	count, err := svc.UnreadCount(context.Background(), user)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	marked, err := svc.MarkAllRead(context.Background(), user)
	require.NoError(t, err)
	assert.EqualValues(t, 2, marked)

	count, err = svc.UnreadCount(context.Background(), user)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCreateNotification(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	user := uuid.New()

	err := svc.Create(context.Background(), user, "Welcome", "glad to have you", domain.NotificationSuccess, "/api")
	require.NoError(t, err)

	list, err := svc.ListRecent(context.Background(), user, 0, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Welcome", list[0].Title)
	assert.Equal(t, domain.NotificationSuccess, list[0].Type)
	assert.Equal(t, "/api", list[0].Link)
	assert.False(t, list[0].Read)
}
