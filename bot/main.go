package bot

import (
	"fmt"

	"snaptikbot/models"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

// NewBot skips getMe: the webhook only needs the token
// and must not call telegram while starting.
func NewBot(cfg *models.EnvConfig) (*gotgbot.Bot, error) {
	b, err := gotgbot.NewBot(cfg.BotToken, &gotgbot.BotOpts{
		BotClient:         NewBotClient(cfg.BotAPIURL),
		DisableTokenCheck: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return b, nil
}
