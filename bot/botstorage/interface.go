package botstorage

import "campusevents/bot/model"

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int) (model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUserRole(user model.User) error
	Subscribe(user model.User) error
	Unsubscribe(user model.User) error
	Log(user model.User, msg string) error
}
