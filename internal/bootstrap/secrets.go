package bootstrap

import (
	"context"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/driverscash/driverscash-backend/internal/config"
)

// ResolveTwilioToken swaps the env-provided Twilio auth token for the Secret
// Manager version when a secret resource name is configured. The token never
// lives in the row store or the logs.
func ResolveTwilioToken(ctx context.Context, cfg *config.Config) error {
	if cfg.TwilioAuthSecret == "" {
		return nil
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: cfg.TwilioAuthSecret,
	})
	if err != nil {
		return err
	}
	cfg.TwilioAuthToken = string(result.Payload.Data)
	return nil
}
