package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"snaptikbot/models"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"go.uber.org/zap"
)

var Env = GetDefaultConfig()

var ErrMissingBotToken = errors.New("BOT_TOKEN env is not set")

func LoadEnv() error {
	if value := os.Getenv("BOT_TOKEN"); value != "" {
		Env.BotToken = value
	} else {
		return ErrMissingBotToken
	}
	if value := os.Getenv("BOT_API_URL"); value != "" {
		Env.BotAPIURL = value
	}
	if value := os.Getenv("BOT_USERNAME"); value != "" {
		Env.BotUsername = value
	} else {
		zap.S().Warnf("BOT_USERNAME is not set, using default %s", Env.BotUsername)
	}
	if value := os.Getenv("WEBHOOK_URL"); value != "" {
		Env.WebhookURL = value
	} else {
		zap.S().Warn("WEBHOOK_URL is not set, /api/webhook will fail")
	}
	if value := os.Getenv("LISTEN_ADDR"); value != "" {
		Env.ListenAddr = value
	}
	if value := os.Getenv("DB_DRIVER"); value != "" {
		Env.DBDriver = value
	}
	if value := os.Getenv("DB_DSN"); value != "" {
		Env.DBDSN = value
	}
	if value := os.Getenv("REDIS_URL"); value != "" {
		Env.RedisURL = value
	}
	if value := os.Getenv("HTTP_TIMEOUT"); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return errors.New("HTTP_TIMEOUT env is not a valid duration")
		}
		Env.HTTPTimeout = timeout
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
	if value := os.Getenv("LOG_FILE"); value != "" {
		logFile, err := strconv.ParseBool(value)
		if err != nil {
			return errors.New("LOG_FILE env is not a valid boolean")
		}
		Env.LogFile = logFile
	}
	return nil
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		BotAPIURL:   gotgbot.DefaultAPIURL,
		BotUsername: "SnapTikRsBot",
		ListenAddr:  ":8080",
		HTTPTimeout: 60 * time.Second,
		LogLevel:    "info",
	}
}
