package main

import (
	"net/http"
	"time"

	"snaptikbot/bot"
	"snaptikbot/bot/core"
	"snaptikbot/cache"
	"snaptikbot/config"
	"snaptikbot/database"
	"snaptikbot/ext"
	"snaptikbot/logger"
	"snaptikbot/util/networking"

	"go.uber.org/zap"
)

func main() {
	// the real level is known only after config is loaded
	logger.Init("info", false)

	if err := config.Load(); err != nil {
		zap.S().Fatalf("failed to load config: %v", err)
	}
	if err := logger.Init(config.Env.LogLevel, config.Env.LogFile); err != nil {
		zap.S().Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	zap.S().Debugf("loaded %d resolvers", len(ext.List))

	b, err := bot.NewBot(config.Env)
	if err != nil {
		zap.S().Fatal(err)
	}

	handler := &core.Handler{
		Messenger:   bot.NewMessenger(b),
		Client:      networking.GetDefaultHTTPClient(),
		BotUsername: config.Env.BotUsername,
	}
	if videoCache := setupCache(); videoCache != nil {
		handler.Cache = videoCache
	}

	server := &http.Server{
		Addr:              config.Env.ListenAddr,
		Handler:           bot.NewRouter(handler, config.Env.WebhookURL),
		ReadHeaderTimeout: 10 * time.Second,
	}
	zap.S().Infof("listening on %s", config.Env.ListenAddr)
	if err := server.ListenAndServe(); err != nil {
		zap.S().Fatalf("server stopped: %v", err)
	}
}

// setupCache returns nil when no backend is configured,
// the bot then resolves every link.
func setupCache() cache.Cache {
	switch {
	case config.Env.RedisURL != "":
		redisCache, err := cache.NewRedisFromURL(config.Env.RedisURL)
		if err != nil {
			zap.S().Errorf("cannot connect to redis: %v", err)
			return nil
		}
		return redisCache
	case config.Env.DBDriver != "":
		if err := database.Start(config.Env.DBDriver, config.Env.DBDSN); err != nil {
			zap.S().Errorf("cannot connect to db: %v", err)
			return nil
		}
		return cache.NewSQL()
	default:
		zap.S().Warn("no cache configured")
		return nil
	}
}
