package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"summaryapi/internal/config"
	"summaryapi/internal/summarize/mocks"
)

func configuredGemini() config.GeminiConfig {
	return config.GeminiConfig{APIKey: "test-key", Model: "gemini-1.5-flash"}
}

func TestSummarize_NotConfigured(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc := NewService(gen, config.GeminiConfig{})

	_, err := svc.Summarize(context.Background(), "some transcript", "")

	assert.ErrorIs(t, err, ErrNotConfigured)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestSummarize_EmptyTranscript(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc := NewService(gen, configuredGemini())

	for _, transcript := range []string{"", "   ", "\n\t"} {
		_, err := svc.Summarize(context.Background(), transcript, "custom instruction")
		assert.ErrorIs(t, err, ErrEmptyTranscript)
	}
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestSummarize_DefaultInstructionPrefixesPrompt(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc := NewService(gen, configuredGemini())

	var gotPrompt string
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		gotPrompt = p
		return true
	})).Return("Discussion point:\n - roadmap", nil)

	out, err := svc.Summarize(context.Background(), "Team discussed roadmap.", "")

	assert.NoError(t, err)
	assert.Equal(t, "Discussion point:\n - roadmap", out)
	assert.True(t, strings.HasPrefix(gotPrompt, DefaultInstruction))
	assert.True(t, strings.HasSuffix(gotPrompt, "\n\nTranscript:\nTeam discussed roadmap."))
}

func TestSummarize_CustomInstruction(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc := NewService(gen, configuredGemini())

	gen.On("Generate", mock.Anything, "Be terse.\n\nTranscript:\nhello").Return("ok", nil).Once()

	out, err := svc.Summarize(context.Background(), "hello", "Be terse.")

	assert.NoError(t, err)
	assert.Equal(t, "ok", out)
	gen.AssertExpectations(t)
}

func TestSummarize_RemoteErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		remote  error
		wantErr error
	}{
		{"invalid key", errors.New("googleapi: Error 400: API key not valid [API_KEY_INVALID]"), ErrAPIKeyInvalid},
		{"permission denied", errors.New("rpc error: code = PermissionDenied desc = PERMISSION_DENIED"), ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(mocks.MockGenerator)
			svc := NewService(gen, configuredGemini())
			gen.On("Generate", mock.Anything, mock.Anything).Return("", tt.remote).Once()

			_, err := svc.Summarize(context.Background(), "transcript", "")

			assert.ErrorIs(t, err, tt.wantErr)
			// Exactly one remote attempt, never retried.
			gen.AssertNumberOfCalls(t, "Generate", 1)
		})
	}
}

func TestSummarize_UnrecognizedRemoteErrorIsWrapped(t *testing.T) {
	gen := new(mocks.MockGenerator)
	svc := NewService(gen, configuredGemini())
	cause := errors.New("deadline exceeded")
	gen.On("Generate", mock.Anything, mock.Anything).Return("", cause)

	_, err := svc.Summarize(context.Background(), "transcript", "")

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrAPIKeyInvalid)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
}

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "x\n\nTranscript:\nbody", BuildPrompt("x", "body"))
	assert.Equal(t, DefaultInstruction+"\n\nTranscript:\nbody", BuildPrompt("", "body"))
}
