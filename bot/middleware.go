package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"go.uber.org/zap"
)

// BotClient logs every bot API call at debug level.
type BotClient struct {
	gotgbot.BotClient
}

func (b BotClient) RequestWithContext(
	ctx context.Context,
	token string,
	method string,
	params map[string]string,
	data map[string]gotgbot.FileReader,
	opts *gotgbot.RequestOpts,
) (json.RawMessage, error) {
	start := time.Now()
	val, err := b.BotClient.RequestWithContext(ctx, token, method, params, data, opts)
	if err != nil {
		zap.S().Debugf("%s failed after %s: %v", method, time.Since(start), err)
		return nil, err
	}
	zap.S().Debugf("%s done in %s", method, time.Since(start))
	return val, nil
}

func NewBotClient(botAPIURL string) BotClient {
	if botAPIURL == "" {
		botAPIURL = gotgbot.DefaultAPIURL
	}
	return BotClient{
		BotClient: &gotgbot.BaseBotClient{
			Client: http.Client{
				Transport: &http.Transport{
					// avoid using proxy for telegram
					Proxy: func(r *http.Request) (*url.URL, error) {
						return nil, nil
					},
				},
			},
			UseTestEnvironment: false,
			DefaultRequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Minute,
				APIURL:  botAPIURL,
			},
		},
	}
}
