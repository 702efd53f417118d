package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "real-key")
	t.Setenv("EMAIL_USER", "team@example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("MAX_AUDIO_BYTES", "1048576")

	cfg := Load()

	assert.Equal(t, "real-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "team@example.com", cfg.Mail.Username)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.Equal(t, int64(1048576), cfg.Limits.MaxAudioBytes)
	assert.Equal(t, int64(5*1024*1024), cfg.Limits.MaxUploadBytes)
}

func TestGeminiConfigured(t *testing.T) {
	assert.False(t, GeminiConfig{}.Configured())
	assert.False(t, GeminiConfig{APIKey: placeholderGeminiKey}.Configured())
	assert.True(t, GeminiConfig{APIKey: "k"}.Configured())
}

func TestOpenAIConfigured(t *testing.T) {
	assert.False(t, OpenAIConfig{}.Configured())
	assert.False(t, OpenAIConfig{APIKey: placeholderOpenAIKey}.Configured())
	assert.True(t, OpenAIConfig{APIKey: "k"}.Configured())
}

func TestMailConfigured(t *testing.T) {
	assert.False(t, MailConfig{}.Configured())
	assert.False(t, MailConfig{Username: "u@example.com"}.Configured())
	assert.False(t, MailConfig{Username: placeholderMailUser, Password: "p"}.Configured())
	assert.False(t, MailConfig{Username: "u@example.com", Password: placeholderMailPass}.Configured())
	assert.True(t, MailConfig{Username: "u@example.com", Password: "p"}.Configured())
}

func TestGetEnvHelpers(t *testing.T) {
	const key = "SUMMARYAPI_TEST_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)
	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("SUMMARYAPI_NON_EXISTENT", "default"))

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))
	assert.Equal(t, int64(123), getEnvInt64(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))
	assert.Equal(t, int64(10), getEnvInt64(key, 10))
}
