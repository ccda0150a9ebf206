package handlers

import (
	"log/slog"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/driverscash/driverscash-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client

	BotSvc      BotService
	ReportSvc   ReportService
	Records     RecordLister
	Reminders   ReminderLister
	Transcriber Transcriber

	// WebhookTimeout bounds one whole inbound-message handling pass so the
	// reply beats the messaging provider's delivery deadline.
	WebhookTimeout time.Duration
}
