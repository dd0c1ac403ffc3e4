package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
	Order  int      `toml:"order"`
}

type Auth struct {
	SqliteFile     string `toml:"sqlite_file"`
	Token          string `toml:"token"`
	Expiration     string `toml:"expiration"`
	RootPassword   string `toml:"root_password"`
	PasswordPepper string `toml:"password_pepper"`
	Rules          []Rule `toml:"rules"`
}

// Conflict holds the busy-window buffers for registration
// time-overlap detection. Values are time.ParseDuration strings.
type Conflict struct {
	PreBuffer  string `toml:"pre_buffer"`
	PostBuffer string `toml:"post_buffer"`
}

type Server struct {
	Host         string   `toml:"host"`
	Port         int      `toml:"port"`
	Debug        bool     `toml:"debug_mode"`
	TgBotEnabled bool     `toml:"tg_bot_enabled"`
	SqliteFile   string   `toml:"sqlite_file"`
	Auth         Auth     `toml:"auth"`
	Conflict     Conflict `toml:"conflict"`
}

type TgBot struct {
	TelegramApiToken string `toml:"telegram_apitoken"`
	AdminPass        string `toml:"admin_pass"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func New(serverPath, botPath string) (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var tgBotCfg TgBot
	_, err = toml.DecodeFile(botPath, &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
