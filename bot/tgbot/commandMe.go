package tgbot

import (
	"strings"

	"campusevents/bot/botstorage"
	"campusevents/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type MeCommand struct {
	botStorage botstorage.BotStorage
}

func (c *MeCommand) Run(user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	var b strings.Builder
	b.WriteString(user.FirstName)
	if user.Username != "" {
		b.WriteString(" (@")
		b.WriteString(user.Username)
		b.WriteString(")")
	}
	b.WriteString("\nRole: ")
	b.WriteString(roleName(user.Role))
	if len(user.Subscriptions) > 0 {
		b.WriteString("\nSubscribed to new event announcements")
	} else {
		b.WriteString("\nNot subscribed, use /sub to get new event announcements")
	}
	resp.Text = b.String()
	return nil
}

func roleName(role model.UserRole) string {
	switch role {
	case model.RoleAdmin:
		return "admin"
	case model.RoleModerator:
		return "moderator"
	default:
		return "user"
	}
}

func (c *MeCommand) Help() string {
	return `Shows your profile and subscription status`
}

func (c *MeCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *MeCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
