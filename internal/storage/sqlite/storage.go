package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campusevents/gen/model"
	"campusevents/gen/table"
	"campusevents/internal/domain"
	sqlite3migrate "campusevents/internal/migrate"
	"campusevents/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.EventStorage = (*Storage)(nil)
var _ storage.RegistrationStorage = (*Storage)(nil)
var _ storage.NotificationStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "event-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3migrate.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("event storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		ORDER_BY(table.Events.StartsAt.ASC()).
		QueryContext(ctx, s.db, &events)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(events), nil
}

func (s *Storage) ListEventsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	exprs := make([]sqlite.Expression, 0, len(ids))
	for _, id := range ids {
		exprs = append(exprs, sqlite.String(id.String()))
	}
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.ID.IN(exprs...)).
		QueryContext(ctx, s.db, &events)
	if err != nil {
		return nil, err
	}
	return convertEventsToDomain(events), nil
}

func (s *Storage) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	var event model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(table.Events.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &event)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Event{}, storage.ErrNotFound
		}
		return domain.Event{}, err
	}
	return convertEventToDomain(event)
}

func (s *Storage) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	_, err := table.Events.
		INSERT(table.Events.AllColumns).
		MODEL(convertEventFromDomain(event)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Event{}, mapConstraint(err)
	}
	return event, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, event domain.Event) error {
	res, err := table.Events.
		UPDATE(
			table.Events.Title,
			table.Events.Description,
			table.Events.StartsAt,
			table.Events.Location,
		).
		MODEL(convertEventFromDomain(event)).
		WHERE(table.Events.ID.EQ(sqlite.String(event.ID.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return mapConstraint(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteEventCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// registrations first, so an event row never outlives its
	// registrations but the reverse is impossible too
	_, err = table.Registrations.
		DELETE().
		WHERE(table.Registrations.EventID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	res, err := table.Events.
		DELETE().
		WHERE(table.Events.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return tx.Commit()
}

func (s *Storage) EventExists(ctx context.Context, title string, startsAt time.Time, location string) (bool, error) {
	var events []model.Events
	err := table.Events.
		SELECT(table.Events.AllColumns).
		FROM(table.Events).
		WHERE(
			table.Events.Title.EQ(sqlite.String(title)).
				AND(table.Events.Location.EQ(sqlite.String(location))),
		).
		QueryContext(ctx, s.db, &events)
	if err != nil {
		return false, err
	}
	for _, e := range events {
		if e.StartsAt.Equal(startsAt) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Storage) CreateRegistration(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	_, err := table.Registrations.
		INSERT(table.Registrations.AllColumns).
		MODEL(convertRegistrationFromDomain(reg)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Registration{}, mapConstraint(err)
	}
	return reg, nil
}

func (s *Storage) GetRegistration(ctx context.Context, id uuid.UUID) (domain.Registration, error) {
	var reg model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		WHERE(table.Registrations.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &reg)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Registration{}, storage.ErrNotFound
		}
		return domain.Registration{}, err
	}
	return convertRegistrationToDomain(reg)
}

func (s *Storage) GetActiveRegistration(ctx context.Context, studentID, eventID uuid.UUID) (domain.Registration, error) {
	var reg model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		WHERE(
			table.Registrations.StudentID.EQ(sqlite.String(studentID.String())).
				AND(table.Registrations.EventID.EQ(sqlite.String(eventID.String()))).
				AND(table.Registrations.Status.EQ(sqlite.String(domain.RegistrationStatusActive))),
		).
		QueryContext(ctx, s.db, &reg)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Registration{}, storage.ErrNotFound
		}
		return domain.Registration{}, err
	}
	return convertRegistrationToDomain(reg)
}

func (s *Storage) ListActiveByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.Registration, error) {
	var regs []model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		WHERE(
			table.Registrations.StudentID.EQ(sqlite.String(studentID.String())).
				AND(table.Registrations.Status.EQ(sqlite.String(domain.RegistrationStatusActive))),
		).
		QueryContext(ctx, s.db, &regs)
	if err != nil {
		return nil, err
	}
	return convertRegistrationsToDomain(regs)
}

func (s *Storage) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domain.Registration, error) {
	var regs []model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		WHERE(table.Registrations.StudentID.EQ(sqlite.String(studentID.String()))).
		ORDER_BY(table.Registrations.Status.ASC(), table.Registrations.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &regs)
	if err != nil {
		return nil, err
	}
	return convertRegistrationsToDomain(regs)
}

func (s *Storage) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Registration, error) {
	var regs []model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		WHERE(table.Registrations.EventID.EQ(sqlite.String(eventID.String()))).
		ORDER_BY(table.Registrations.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &regs)
	if err != nil {
		return nil, err
	}
	return convertRegistrationsToDomain(regs)
}

func (s *Storage) ListRegistrations(ctx context.Context) ([]domain.Registration, error) {
	var regs []model.Registrations
	err := table.Registrations.
		SELECT(table.Registrations.AllColumns).
		FROM(table.Registrations).
		ORDER_BY(table.Registrations.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &regs)
	if err != nil {
		return nil, err
	}
	return convertRegistrationsToDomain(regs)
}

// CancelRegistration is a single conditional write: only an active
// registration owned by the student flips to cancelled.
func (s *Storage) CancelRegistration(ctx context.Context, id, studentID uuid.UUID) (bool, error) {
	res, err := table.Registrations.
		UPDATE(table.Registrations.Status).
		SET(sqlite.String(domain.RegistrationStatusCancelled)).
		WHERE(
			table.Registrations.ID.EQ(sqlite.String(id.String())).
				AND(table.Registrations.StudentID.EQ(sqlite.String(studentID.String()))).
				AND(table.Registrations.Status.EQ(sqlite.String(domain.RegistrationStatusActive))),
		).
		ExecContext(ctx, s.db)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Storage) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := table.Notifications.
		INSERT(table.Notifications.AllColumns).
		MODEL(convertNotificationFromDomain(n)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) ListNotifications(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) ([]domain.Notification, error) {
	where := table.Notifications.UserID.EQ(sqlite.String(userID.String()))
	if unreadOnly {
		where = where.AND(table.Notifications.IsRead.IS_FALSE())
	}
	var notifications []model.Notifications
	err := table.Notifications.
		SELECT(table.Notifications.AllColumns).
		FROM(table.Notifications).
		WHERE(where).
		ORDER_BY(table.Notifications.CreatedAt.DESC()).
		LIMIT(int64(limit)).
		QueryContext(ctx, s.db, &notifications)
	if err != nil {
		return nil, err
	}
	return convertNotificationsToDomain(notifications)
}

func (s *Storage) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res, err := table.Notifications.
		UPDATE(table.Notifications.IsRead).
		SET(sqlite.Bool(true)).
		WHERE(
			table.Notifications.ID.EQ(sqlite.String(id.String())).
				AND(table.Notifications.UserID.EQ(sqlite.String(userID.String()))),
		).
		ExecContext(ctx, s.db)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Storage) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := table.Notifications.
		UPDATE(table.Notifications.IsRead).
		SET(sqlite.Bool(true)).
		WHERE(
			table.Notifications.UserID.EQ(sqlite.String(userID.String())).
				AND(table.Notifications.IsRead.IS_FALSE()),
		).
		ExecContext(ctx, s.db)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Storage) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var dest struct {
		Count int64
	}
	err := table.Notifications.
		SELECT(sqlite.COUNT(table.Notifications.ID).AS("count")).
		FROM(table.Notifications).
		WHERE(
			table.Notifications.UserID.EQ(sqlite.String(userID.String())).
				AND(table.Notifications.IsRead.IS_FALSE()),
		).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, err
	}
	return dest.Count, nil
}

func mapConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return storage.ErrDuplicate
	}
	return err
}
