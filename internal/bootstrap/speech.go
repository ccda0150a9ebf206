package bootstrap

import (
	"context"

	speech "cloud.google.com/go/speech/apiv1"
)

func InitSpeech(ctx context.Context) (*speech.Client, error) {
	return speech.NewClient(ctx)
}
