package storage

import (
	"context"
	"errors"
	"time"

	"campusevents/auth/users"

	"github.com/google/uuid"
)

var ErrEmailTaken = errors.New("email already in use")

type AuthStorage interface {
	CreateUser(ctx context.Context, user users.User, secret users.Secret) error
	GetUser(ctx context.Context, id uuid.UUID) (users.User, error)
	GetUserByEmail(ctx context.Context, email string) (users.User, error)
	GetUserSecret(ctx context.Context, user users.User) (users.Secret, error)
	SignIn(ctx context.Context, email string, passwordHash []byte) (users.User, error)
	SetResetToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	GetUserByResetToken(ctx context.Context, token string) (users.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, secret users.Secret) error
}
