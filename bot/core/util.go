package core

import (
	"net/url"
	"strings"

	"snaptikbot/util"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/pkg/errors"
)

// ParseContentURL accepts absolute http(s) URLs only, surrounding
// whitespace is ignored, and returns them normalized.
func ParseContentURL(text string) (*url.URL, error) {
	contentURL, err := url.Parse(strings.TrimSpace(text))
	if err != nil {
		return nil, util.ErrInvalidURL
	}
	if contentURL.Scheme != "http" && contentURL.Scheme != "https" {
		return nil, util.ErrInvalidURL
	}
	util.NormalizeURL(contentURL)
	return contentURL, nil
}

func isTooLarge(err error) bool {
	var tgErr *gotgbot.TelegramError
	if errors.As(err, &tgErr) {
		return tgErr.Description == tooLargeDescription
	}
	return false
}

// getRequest picks the text and message to answer. In groups the bot
// only reacts to its mention in reply to another message.
func getRequest(msg *gotgbot.Message, mention string) (string, int64, bool) {
	if msg.Chat.Id == 0 || msg.Text == "" {
		return "", 0, false
	}
	if msg.Chat.Type == gotgbot.ChatTypePrivate {
		return msg.Text, msg.MessageId, true
	}
	if msg.Text != mention || msg.ReplyToMessage == nil {
		return "", 0, false
	}
	reply := msg.ReplyToMessage
	if reply.Text == "" {
		return "", 0, false
	}
	return reply.Text, reply.MessageId, true
}
