package bot

import (
	"context"
	"strings"

	"snaptikbot/models"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/pkg/errors"
)

// Messenger implements models.Messenger on top of gotgbot.
type Messenger struct {
	bot *gotgbot.Bot
}

func NewMessenger(bot *gotgbot.Bot) *Messenger {
	return &Messenger{bot: bot}
}

func replyParameters(messageID int64) *gotgbot.ReplyParameters {
	if messageID == 0 {
		return nil
	}
	return &gotgbot.ReplyParameters{
		MessageId:                messageID,
		AllowSendingWithoutReply: true,
	}
}

func (m *Messenger) SendMessage(
	ctx context.Context,
	msg *models.SendMessage,
) (*gotgbot.Message, error) {
	opts := &gotgbot.SendMessageOpts{
		ReplyParameters: replyParameters(msg.ReplyToMessageID),
	}
	if msg.DisableLinkPreview {
		opts.LinkPreviewOptions = &gotgbot.LinkPreviewOptions{IsDisabled: true}
	}
	return m.bot.SendMessageWithContext(ctx, msg.ChatID, msg.Text, opts)
}

func (m *Messenger) EditMessageText(
	ctx context.Context,
	msg *models.EditMessageText,
) error {
	_, _, err := m.bot.EditMessageTextWithContext(ctx, msg.Text, &gotgbot.EditMessageTextOpts{
		ChatId:    msg.ChatID,
		MessageId: msg.MessageID,
	})
	return err
}

func (m *Messenger) DeleteMessage(
	ctx context.Context,
	msg *models.DeleteMessage,
) error {
	ok, err := m.bot.DeleteMessageWithContext(ctx, msg.ChatID, msg.MessageID, nil)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("message was not deleted")
	}
	return nil
}

func (m *Messenger) SendVideo(
	ctx context.Context,
	video *models.SendVideo,
) (*gotgbot.Message, error) {
	return m.bot.SendVideoWithContext(ctx, video.ChatID, inputFile(video.Video), &gotgbot.SendVideoOpts{
		Caption:         video.Caption,
		ReplyParameters: replyParameters(video.ReplyToMessageID),
	})
}

func (m *Messenger) SetWebhook(ctx context.Context, url string) error {
	if url == "" {
		return errors.New("webhook url is empty")
	}
	ok, err := m.bot.SetWebhookWithContext(ctx, url, nil)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("webhook was not set")
	}
	return nil
}

// inputFile tells cached file ids apart from resolved URLs.
func inputFile(video string) gotgbot.InputFileOrString {
	if strings.HasPrefix(video, "http://") || strings.HasPrefix(video, "https://") {
		return gotgbot.InputFileByURL(video)
	}
	return gotgbot.InputFileByID(video)
}
