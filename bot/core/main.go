package core

import (
	"context"

	"snaptikbot/cache"
	"snaptikbot/ext"
	"snaptikbot/logger"
	"snaptikbot/models"
	"snaptikbot/util"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

type Handler struct {
	Messenger   models.Messenger
	Cache       cache.Cache // optional
	Client      models.HTTPClient
	BotUsername string
}

// request is the state of a single update being answered.
type request struct {
	*Handler
	ctx         context.Context
	chatID      int64
	messageID   int64
	text        string
	placeholder int64
}

// HandleUpdate never fails: every problem is logged
// or reported to the user by editing the placeholder.
func (h *Handler) HandleUpdate(ctx context.Context, update *gotgbot.Update) {
	if update == nil || update.Message == nil {
		return
	}
	text, messageID, ok := getRequest(update.Message, "@"+h.BotUsername)
	if !ok {
		return
	}
	req := &request{
		Handler:   h,
		ctx:       ctx,
		chatID:    update.Message.Chat.Id,
		messageID: messageID,
		text:      text,
	}
	if text == startCommand {
		req.sendGreeting()
		return
	}
	req.process()
}

func (r *request) process() {
	log := logger.FromContext(r.ctx)

	placeholder, err := r.Messenger.SendMessage(r.ctx, &models.SendMessage{
		ChatID:           r.chatID,
		Text:             processingMessage,
		ReplyToMessageID: r.messageID,
	})
	if err != nil {
		log.Errorf("failed to send placeholder: %v", err)
		return
	}
	if placeholder == nil {
		log.Error("placeholder message is missing in response")
		return
	}
	r.placeholder = placeholder.MessageId

	contentURL, err := ParseContentURL(r.text)
	if err != nil {
		r.editPlaceholder(badURLMessage)
		return
	}
	normalizedURL := contentURL.String()

	// classification is pure, unsupported links never reach the cache
	resolver, err := ext.ByURL(contentURL)
	if err != nil {
		log.Warnf("%v: %s", err, normalizedURL)
		r.editPlaceholder(badURLMessage)
		return
	}

	if r.Cache != nil {
		fileID, found, err := r.Cache.Lookup(r.ctx, normalizedURL)
		switch {
		case err != nil:
			log.Errorf("failed to lookup cached video: %v", err)
		case found:
			log.Debugf("cache hit for %s", normalizedURL)
			if _, err := r.sendVideo(fileID); err != nil {
				log.Errorf("failed to send cached video: %v", err)
			}
			r.deletePlaceholder()
			return
		}
	}

	videoURL, err := ext.Resolve(r.ctx, resolver, normalizedURL, r.Client)
	if err != nil {
		log.Errorf("failed to resolve %s: %v", normalizedURL, err)
		r.editPlaceholder(cannotProcessVideo)
		return
	}
	util.RemoveQueryParam(videoURL, "dl")

	sent, err := r.sendVideo(videoURL.String())
	if err != nil {
		log.Errorf("failed to send video: %v", err)
		if isTooLarge(err) {
			r.editPlaceholder(videoTooLarge)
		} else {
			r.editPlaceholder(cannotProcessVideo)
		}
		return
	}
	r.deletePlaceholder()

	if r.Cache == nil {
		return
	}
	fileID := util.GetMessageFileID(sent)
	if fileID == "" {
		return
	}
	if err := r.Cache.Remember(r.ctx, normalizedURL, fileID); err != nil {
		log.Errorf("failed to cache video: %v", err)
	}
}

func (r *request) sendGreeting() {
	_, err := r.Messenger.SendMessage(r.ctx, &models.SendMessage{
		ChatID:             r.chatID,
		Text:               greetingMessage,
		DisableLinkPreview: true,
	})
	if err != nil {
		logger.FromContext(r.ctx).Errorf("failed to send greeting: %v", err)
	}
}

func (r *request) sendVideo(video string) (*gotgbot.Message, error) {
	return r.Messenger.SendVideo(r.ctx, &models.SendVideo{
		ChatID:           r.chatID,
		Video:            video,
		ReplyToMessageID: r.messageID,
		Caption:          r.text,
	})
}

func (r *request) editPlaceholder(text string) {
	err := r.Messenger.EditMessageText(r.ctx, &models.EditMessageText{
		ChatID:    r.chatID,
		MessageID: r.placeholder,
		Text:      text,
	})
	if err != nil {
		logger.FromContext(r.ctx).Errorf("failed to edit placeholder: %v", err)
	}
}

func (r *request) deletePlaceholder() {
	err := r.Messenger.DeleteMessage(r.ctx, &models.DeleteMessage{
		ChatID:    r.chatID,
		MessageID: r.placeholder,
	})
	if err != nil {
		logger.FromContext(r.ctx).Errorf("failed to delete placeholder: %v", err)
	}
}
