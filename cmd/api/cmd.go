package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/driverscash/driverscash-backend/internal/bootstrap"
	"github.com/driverscash/driverscash-backend/internal/config"
	"github.com/driverscash/driverscash-backend/internal/handlers"
	"github.com/driverscash/driverscash-backend/internal/response"
	"github.com/driverscash/driverscash-backend/internal/router"
	"github.com/driverscash/driverscash-backend/internal/services"
	"github.com/driverscash/driverscash-backend/internal/store"
	"github.com/driverscash/driverscash-backend/internal/transcribe"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore, cfg.StoreTimeout)
	rstore := store.NewRecordStore(bs.Firestore, cfg.StoreTimeout)
	mstore := store.NewReminderStore(bs.Firestore, cfg.StoreTimeout)

	// services
	reportsvc := services.NewReportService(rstore)
	alerts := services.NewAlertEvaluator(cfg.AlertMarginKM)
	botsvc := services.NewBotService(ustore, rstore, mstore, reportsvc, alerts)
	voice := transcribe.NewSpeechService(bs.Speech, http.DefaultClient,
		cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.SpeechLanguage)

	// response handler
	rh := response.New(bs.Log)

	// dependencies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.BotSvc = botsvc
	deps.ReportSvc = reportsvc
	deps.Records = rstore
	deps.Reminders = mstore
	deps.Transcriber = voice

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
