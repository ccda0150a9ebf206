package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	speech "cloud.google.com/go/speech/apiv1"
	"firebase.google.com/go/v4/auth"

	"github.com/driverscash/driverscash-backend/internal/config"
	"github.com/driverscash/driverscash-backend/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Firebase  *auth.Client
	Speech    *speech.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	bs.Firebase, err = InitFirebase(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.Speech, err = InitSpeech(applicationCtx)
	if err != nil {
		return bs, err
	}
	if err := ResolveTwilioToken(applicationCtx, cfg); err != nil {
		return bs, err
	}

	return bs, nil
}

func (b *Bootstrap) Close() {
	if b.Firestore != nil {
		b.Firestore.Close()
	}
	if b.Speech != nil {
		b.Speech.Close()
	}
}
