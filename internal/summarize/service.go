// Package summarize turns a normalized transcript into an AI-generated
// structured summary with a single call to a remote generative-text
// capability. The whole transcript goes out in one request: no streaming,
// no chunking, and the remote model's input limit is the effective ceiling.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"summaryapi/internal/config"
)

var (
	// ErrNotConfigured is returned when no usable Gemini API key is present.
	ErrNotConfigured = errors.New("Gemini API key not configured: please check your .env file")

	// ErrEmptyTranscript is returned for input that is empty after trimming.
	ErrEmptyTranscript = errors.New("transcript text is empty")

	// ErrAPIKeyInvalid and ErrPermissionDenied classify remote rejections so
	// the HTTP layer can surface a targeted remediation message.
	ErrAPIKeyInvalid    = errors.New("invalid Gemini API key")
	ErrPermissionDenied = errors.New("Gemini API key permission denied")
)

// Generator issues one prompt to a remote generative-text capability and
// returns its text output. Kept narrow so tests can substitute a mock.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service produces meeting summaries.
type Service interface {
	// Summarize builds a prompt from the instruction (or the built-in
	// default when empty) and the transcript, issues exactly one remote
	// call, and returns the model's text unmodified.
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

type service struct {
	gen Generator
	cfg config.GeminiConfig
}

// NewService constructs the summary service. gen may be nil when the
// capability is unconfigured; Summarize then fails with ErrNotConfigured.
func NewService(gen Generator, cfg config.GeminiConfig) Service {
	return &service{gen: gen, cfg: cfg}
}

func (s *service) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	if !s.cfg.Configured() || s.gen == nil {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyTranscript
	}

	out, err := s.gen.Generate(ctx, BuildPrompt(instruction, transcript))
	if err != nil {
		return "", classifyRemoteError(err)
	}
	return out, nil
}

// classifyRemoteError maps the Gemini API's error strings onto sentinel
// errors. The API reports these as status tokens inside the message body,
// so substring matching is the stable way to detect them.
func classifyRemoteError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY_INVALID"):
		return fmt.Errorf("%w: %v", ErrAPIKeyInvalid, err)
	case strings.Contains(msg, "PERMISSION_DENIED"):
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	default:
		// Unrecognized failures pass through unchanged; the HTTP layer
		// prefixes the user-facing message.
		return err
	}
}
