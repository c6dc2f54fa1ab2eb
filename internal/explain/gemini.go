package explain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// contentGenerator is the part of the genai client the provider needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider explains transcriptions with Google Gemini models
type GeminiProvider struct {
	apiKey string
	model  string

	mu        sync.Mutex
	generator contentGenerator
}

// NewGeminiProvider creates a new Gemini explanation provider. The client
// is created on first use.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = DefaultConfig().GeminiModel
	}
	return &GeminiProvider{apiKey: apiKey, model: model}
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is configured
func (p *GeminiProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}

func (p *GeminiProvider) client(ctx context.Context) (contentGenerator, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.generator != nil {
		return p.generator, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	p.generator = client.Models
	return p.generator, nil
}

// Explain asks the Gemini model to explain the transcription
func (p *GeminiProvider) Explain(ctx context.Context, req Request) (string, error) {
	if err := p.IsAvailable(); err != nil {
		return "", err
	}
	generator, err := p.client(ctx)
	if err != nil {
		return "", err
	}

	temperature := float32(0.3)
	resp, err := generator.GenerateContent(ctx, p.model, genai.Text(buildPrompt(req)), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   800,
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}
