package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/driverscash/driverscash-backend/internal/reply"
	"github.com/driverscash/driverscash-backend/internal/twiml"
	"github.com/driverscash/driverscash-backend/pkg/logger"
)

const defaultWebhookTimeout = 12 * time.Second

type BotService interface {
	HandleMessage(ctx context.Context, whatsappNumber, text string) string
}

type Transcriber interface {
	TranscribeURL(ctx context.Context, mediaURL, contentType string) (string, error)
}

type webhookHandlers struct {
	Bot         BotService
	Transcriber Transcriber
	Timeout     time.Duration
}

func NewWebhookHandlers(deps *Deps) *webhookHandlers {
	timeout := deps.WebhookTimeout
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	return &webhookHandlers{
		Bot:         deps.BotSvc,
		Transcriber: deps.Transcriber,
		Timeout:     timeout,
	}
}

// Receive handles one inbound WhatsApp message and always answers 200 with a
// single-message TwiML body: the webhook contract is that no inbound message
// goes unanswered.
func (h *webhookHandlers) Receive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		logger.FromContext(ctx).Warn("malformed webhook form", "error", err)
		writeTwiML(ctx, w, reply.Unknown())
		return
	}

	from := strings.TrimPrefix(r.PostFormValue("From"), "whatsapp:")
	body := strings.TrimSpace(r.PostFormValue("Body"))

	if body == "" {
		if !hasAudio(r) {
			writeTwiML(ctx, w, reply.Unknown())
			return
		}
		text, ok := h.transcribeVoiceNote(ctx, r)
		if !ok {
			writeTwiML(ctx, w, reply.CouldNotHearAudio())
			return
		}
		body = text
	}

	writeTwiML(ctx, w, h.Bot.HandleMessage(ctx, from, body))
}

func hasAudio(r *http.Request) bool {
	numMedia := r.PostFormValue("NumMedia")
	return numMedia != "" && numMedia != "0" &&
		strings.HasPrefix(r.PostFormValue("MediaContentType0"), "audio")
}

// transcribeVoiceNote extracts text from an attached voice note. ok is false
// when transcription failed or nothing was recognized; both get the same
// "could not hear you" reply because an empty transcript is not an error.
func (h *webhookHandlers) transcribeVoiceNote(ctx context.Context, r *http.Request) (string, bool) {
	if h.Transcriber == nil {
		return "", false
	}
	contentType := r.PostFormValue("MediaContentType0")

	text, err := h.Transcriber.TranscribeURL(ctx, r.PostFormValue("MediaUrl0"), contentType)
	if err != nil {
		logger.FromContext(ctx).Error("voice note transcription failed", "error", err)
		return "", false
	}
	if text == "" {
		return "", false
	}
	logger.FromContext(ctx).Info("voice note transcribed", "text", text)
	return text, true
}

func writeTwiML(ctx context.Context, w http.ResponseWriter, body string) {
	out, err := twiml.Reply(body)
	if err != nil {
		logger.FromContext(ctx).Error("failed to render twiml", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}
