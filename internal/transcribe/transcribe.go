// Package transcribe wraps the remote Whisper speech-to-text capability.
// The capability is optional: when no API key is configured the adapter is
// constructed without a client and fails fast with remediation guidance
// instead of attempting a doomed network call.
package transcribe

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"summaryapi/internal/config"
)

var (
	// ErrUnavailable is returned when transcription is requested but no
	// speech-to-text capability was configured at startup.
	ErrUnavailable = errors.New("audio transcription requires an OpenAI API key: add OPENAI_API_KEY to your .env file, or paste the transcript into the text input instead")

	// ErrAudioTooLarge is returned before any remote call when the audio
	// buffer exceeds the transcription ceiling.
	ErrAudioTooLarge = errors.New("audio file too large: please use files smaller than 2MB or use text input instead")
)

// TranscriptionError wraps a remote transcription failure with guidance the
// UI can show verbatim.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("audio transcription failed: %v; please try a smaller audio file or use text input instead", e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// transcriptionClient is the slice of the OpenAI client the adapter uses,
// kept narrow so tests can inject a mock.
type transcriptionClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// Adapter submits audio buffers to the Whisper API and returns the
// transcript text verbatim. One attempt per call; the caller resubmits.
type Adapter struct {
	client   transcriptionClient
	model    string
	maxBytes int64
}

// New constructs the adapter. When cfg carries no usable API key the adapter
// is still returned, but every Extract call fails with ErrUnavailable.
func New(cfg config.OpenAIConfig, maxAudioBytes int64) *Adapter {
	a := &Adapter{model: cfg.WhisperModel, maxBytes: maxAudioBytes}
	if cfg.Configured() {
		a.client = openai.NewClient(cfg.APIKey)
	}
	return a
}

// Extract implements the extraction strategy contract for audio uploads.
// The filename is forwarded so the remote API can sniff the audio container
// from its extension.
func (a *Adapter) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	if a.client == nil {
		return "", ErrUnavailable
	}
	if int64(len(data)) > a.maxBytes {
		return "", ErrAudioTooLarge
	}

	resp, err := a.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    a.model,
		FilePath: filename,
		Reader:   bytes.NewReader(data),
	})
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}
	return resp.Text, nil
}
