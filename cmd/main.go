package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	authservice "campusevents/auth/service"
	authsqlite "campusevents/auth/storage/sqlite"
	botsqlite "campusevents/bot/botstorage/sqlite"
	"campusevents/bot/tgbot"
	"campusevents/internal/config"
	"campusevents/internal/logger"
	"campusevents/internal/schedule"
	"campusevents/internal/service"
	"campusevents/internal/storage/sqlite"
	"campusevents/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

var (
	serverConfigPath string
	botConfigPath    string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "path to bot configs")
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	store, err := sqlite.New(log, cfg.Server.SqliteFile)
	if err != nil {
		return err
	}

	notificationService := service.NewNotificationService(log, store)
	eventService := service.NewEventService(log, store, notificationService)
	checker := schedule.NewChecker(conflictConfig(cfg.Server.Conflict))
	registrationService := service.NewRegistrationService(log, store, store, notificationService, checker)

	authStorage, err := authsqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	authService, err := authservice.New(context.Background(), cfg.Server.Auth, authStorage)
	if err != nil {
		return err
	}

	if cfg.Server.TgBotEnabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(eventService, botStorage, cfg, log)
		if err != nil {
			return err
		}
		eventService.SetAnnouncer(&bot)
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(cfg.Server, authService, eventService, registrationService, notificationService)
	if err != nil {
		return err
	}
	return server.Serve()
}

func conflictConfig(cfg config.Conflict) schedule.Config {
	var sc schedule.Config
	if d, err := time.ParseDuration(cfg.PreBuffer); err == nil {
		sc.PreBuffer = d
	}
	if d, err := time.ParseDuration(cfg.PostBuffer); err == nil {
		sc.PostBuffer = d
	}
	return sc
}
