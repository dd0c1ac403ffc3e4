package users

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Roles        []string
	RegisteredAt time.Time
}

func (u User) Is(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u User) IsAdmin() bool {
	return u.Is(RoleAdmin)
}

type Secret struct {
	PasswordHash []byte
	Salt         []byte
}
