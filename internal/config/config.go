package config

import (
	"os"
	"strconv"
)

// Placeholder values shipped in .env.example. Credentials equal to these are
// treated as absent so a half-configured environment fails with a clear
// message instead of a confusing remote error.
const (
	placeholderGeminiKey = "your_gemini_api_key_here"
	placeholderOpenAIKey = "your_openai_api_key_here"
	placeholderMailUser  = "your_gmail_address@gmail.com"
	placeholderMailPass  = "your_gmail_app_password"
)

// GeminiConfig holds settings for the generative-text capability.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Configured reports whether a usable API key is present.
func (g GeminiConfig) Configured() bool {
	return g.APIKey != "" && g.APIKey != placeholderGeminiKey
}

// OpenAIConfig holds settings for the optional speech-to-text capability.
type OpenAIConfig struct {
	APIKey       string
	WhisperModel string
}

// Configured reports whether transcription can be used.
func (o OpenAIConfig) Configured() bool {
	return o.APIKey != "" && o.APIKey != placeholderOpenAIKey
}

// MailConfig holds SMTP submission settings.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Configured reports whether both mail credentials are present and real.
func (m MailConfig) Configured() bool {
	return m.Username != "" && m.Password != "" &&
		m.Username != placeholderMailUser && m.Password != placeholderMailPass
}

// LimitsConfig bounds request payloads. Uploads are held fully in memory, so
// these ceilings also bound peak memory per request.
type LimitsConfig struct {
	MaxUploadBytes int64
	MaxAudioBytes  int64
	MaxJSONBytes   int64
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup and treated as
// read-only afterwards; services receive it by injection, never as a global.
type AppConfig struct {
	Port   string
	Gemini GeminiConfig
	OpenAI OpenAIConfig
	Mail   MailConfig
	Limits LimitsConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the .env file.
func Load() *AppConfig {
	return &AppConfig{
		Port: getEnv("PORT", "3000"),
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			WhisperModel: getEnv("WHISPER_MODEL", "whisper-1"),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
		},
		Limits: LimitsConfig{
			MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 5*1024*1024),
			MaxAudioBytes:  getEnvInt64("MAX_AUDIO_BYTES", 2*1024*1024),
			MaxJSONBytes:   getEnvInt64("MAX_JSON_BYTES", 2*1024*1024),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
