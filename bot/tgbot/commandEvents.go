package tgbot

import (
	"context"
	"strings"
	"time"

	"campusevents/bot/model"
	"campusevents/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	eventsWindow = 30 * 24 * time.Hour
	eventsLimit  = 10
)

type EventsCommand struct {
	eventService *service.EventService
}

func (c *EventsCommand) Run(_ model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	events, err := c.eventService.Upcoming(context.Background(), eventsWindow, eventsLimit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		resp.Text = "No upcoming events in the next 30 days"
		return nil
	}
	var buffer strings.Builder
	buffer.WriteString("Upcoming events:\n")
	for i := range events {
		buffer.WriteString(events[i].StartsAt.Format("Jan 2 3:04 PM"))
		buffer.WriteString(" - ")
		buffer.WriteString(events[i].Title)
		buffer.WriteString(" (")
		buffer.WriteString(events[i].Location)
		buffer.WriteString(")\n")
	}
	resp.Text = buffer.String()
	return nil
}

func (c *EventsCommand) Help() string {
	return `Lists upcoming events`
}

func (c *EventsCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *EventsCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
