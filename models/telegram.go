package models

import (
	"context"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

type SendMessage struct {
	ChatID             int64
	Text               string
	ReplyToMessageID   int64 // zero means no reply
	DisableLinkPreview bool
}

type EditMessageText struct {
	ChatID    int64
	MessageID int64
	Text      string
}

type DeleteMessage struct {
	ChatID    int64
	MessageID int64
}

type SendVideo struct {
	ChatID           int64
	Video            string // file id or HTTP URL
	ReplyToMessageID int64
	Caption          string
}

// Messenger is the subset of the bot API the webhook needs.
type Messenger interface {
	SendMessage(ctx context.Context, msg *SendMessage) (*gotgbot.Message, error)
	EditMessageText(ctx context.Context, msg *EditMessageText) error
	DeleteMessage(ctx context.Context, msg *DeleteMessage) error
	SendVideo(ctx context.Context, video *SendVideo) (*gotgbot.Message, error)
	SetWebhook(ctx context.Context, url string) error
}
