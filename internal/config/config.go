package config

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	ProjectID     string
	LogLevel      string
	Port          string
	AlertMarginKM decimal.Decimal
	StoreTimeout  time.Duration

	TwilioAccountSID string
	TwilioAuthToken  string
	// TwilioAuthSecret is a Secret Manager resource name; when set it
	// overrides TwilioAuthToken at bootstrap.
	TwilioAuthSecret string

	SpeechLanguage string
}

func New() *Config {
	return &Config{
		ProjectID:        os.Getenv("PROJECTID"),
		LogLevel:         os.Getenv("LOGLEVEL"),
		Port:             getEnv("PORT", "8080"),
		AlertMarginKM:    getDecimal("ALERTMARGINKM", decimal.NewFromInt(500)),
		StoreTimeout:     getDuration("STORETIMEOUT", 5*time.Second),
		TwilioAccountSID: os.Getenv("TWILIOACCOUNTSID"),
		TwilioAuthToken:  os.Getenv("TWILIOAUTHTOKEN"),
		TwilioAuthSecret: os.Getenv("TWILIOAUTHSECRET"),
		SpeechLanguage:   getEnv("SPEECHLANGUAGE", "pt-BR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
