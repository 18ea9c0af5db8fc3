package models

import "time"

type EnvConfig struct {
	BotToken    string
	BotAPIURL   string
	BotUsername string
	WebhookURL  string
	ListenAddr  string

	DBDriver string
	DBDSN    string
	RedisURL string

	HTTPTimeout time.Duration
	LogLevel    string
	LogFile     bool
}
