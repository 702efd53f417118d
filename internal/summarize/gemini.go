package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"summaryapi/internal/config"
)

// geminiGenerator is the production Generator backed by the Gemini API.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Generator that calls the Gemini API with the
// configured model. The client is created once and reused across requests.
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiGenerator{client: client, model: cfg.Model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", errors.New("empty response from model")
	}
	return sb.String(), nil
}
