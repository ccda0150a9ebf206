// Package transcribe turns WhatsApp voice notes into command text. The media
// is fetched from Twilio with basic auth and recognized with Google Speech.
// Best effort by contract: an empty transcript means "no command extracted",
// not a failure.
package transcribe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"

	"github.com/driverscash/driverscash-backend/internal/errs"
)

// maxAudioBytes caps a voice-note download; Speech sync recognition rejects
// anything near this size anyway.
const maxAudioBytes = 10 << 20

type speechService struct {
	speech     *speech.Client
	http       *http.Client
	accountSID string
	authToken  string
	language   string
}

func NewSpeechService(client *speech.Client, httpClient *http.Client, accountSID, authToken, language string) *speechService {
	return &speechService{
		speech:     client,
		http:       httpClient,
		accountSID: accountSID,
		authToken:  authToken,
		language:   language,
	}
}

// TranscribeURL downloads one media attachment and returns the recognized
// text, joined across result chunks. Returns "" when nothing was recognized.
func (s *speechService) TranscribeURL(ctx context.Context, mediaURL, contentType string) (string, error) {
	audio, err := s.fetch(ctx, mediaURL)
	if err != nil {
		return "", err
	}

	resp, err := s.speech.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        encodingFor(contentType),
			SampleRateHertz: 16000,
			LanguageCode:    s.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", errs.NewTranscriptionError("speech recognition failed", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

func (s *speechService) fetch(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, errs.NewTranscriptionError("invalid media url", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, errs.NewTranscriptionError("failed to download media", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewTranscriptionError(fmt.Sprintf("media download returned status %d", resp.StatusCode), nil)
	}
	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, errs.NewTranscriptionError("failed to read media body", err)
	}
	return audio, nil
}

// encodingFor maps the webhook's media content type to a Speech encoding.
// WhatsApp voice notes arrive as audio/ogg (Opus).
func encodingFor(contentType string) speechpb.RecognitionConfig_AudioEncoding {
	switch {
	case strings.Contains(contentType, "ogg"), strings.Contains(contentType, "opus"):
		return speechpb.RecognitionConfig_OGG_OPUS
	case strings.Contains(contentType, "amr"):
		return speechpb.RecognitionConfig_AMR
	case strings.Contains(contentType, "wav"):
		return speechpb.RecognitionConfig_LINEAR16
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}
