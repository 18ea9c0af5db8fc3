package bot

import (
	"net/http"
	"runtime/debug"

	"snaptikbot/bot/core"
	"snaptikbot/logger"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func NewRouter(handler *core.Handler, webhookURL string) http.Handler {
	router := chi.NewRouter()
	router.Get("/api/webhook", setupWebhook(handler, webhookURL))
	router.Post("/api/update", processUpdate(handler))
	return router
}

func setupWebhook(handler *core.Handler, webhookURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler.Messenger.SetWebhook(r.Context(), webhookURL); err != nil {
			zap.S().Errorf("failed to set webhook: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Success"))
	}
}

// processUpdate answers 200 no matter what happened,
// telegram would otherwise redeliver the update.
func processUpdate(handler *core.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := zap.S().With("invocation", uuid.NewString())
		defer func() {
			if rec := recover(); rec != nil {
				log.Errorf("panic while handling update: %v\n%s", rec, debug.Stack())
			}
			w.WriteHeader(http.StatusOK)
		}()

		var update gotgbot.Update
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&update); err != nil {
			log.Errorf("failed to decode update: %v", err)
			return
		}
		log = log.With("update_id", update.UpdateId)
		handler.HandleUpdate(logger.WithLogger(r.Context(), log), &update)
	}
}
