package explain

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Request carries a transcribed sentence to explain.
type Request struct {
	Sentence  string
	Phonology string
	Phonetics string
	SAMPA     string
}

// Provider defines the interface for explanation providers
type Provider interface {
	// Explain returns a learner-facing explanation of the transcription
	Explain(ctx context.Context, req Request) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// Config holds the configuration for explanation providers
type Config struct {
	Provider string // "openai" or "gemini"
	Timeout  time.Duration

	OpenAIKey   string
	OpenAIModel string

	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		Timeout:     30 * time.Second,
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.5-flash",
	}
}

// NewProvider creates the configured provider. When the key of the other
// provider is set too, it is used as a fallback. Every provider is guarded
// by its own circuit breaker.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var openaiProvider, geminiProvider Provider
	if config.OpenAIKey != "" {
		openaiProvider = NewBreaker(NewOpenAIProvider(config.OpenAIKey, config.OpenAIModel))
	}
	if config.GeminiKey != "" {
		geminiProvider = NewBreaker(NewGeminiProvider(config.GeminiKey, config.GeminiModel))
	}

	var primary, fallback Provider
	switch config.Provider {
	case "openai":
		if openaiProvider == nil {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		primary, fallback = openaiProvider, geminiProvider
	case "gemini":
		if geminiProvider == nil {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		primary, fallback = geminiProvider, openaiProvider
	default:
		return nil, fmt.Errorf("unknown explanation provider: %s", config.Provider)
	}

	if config.Timeout > 0 {
		primary = withTimeout(primary, config.Timeout)
		if fallback != nil {
			fallback = withTimeout(fallback, config.Timeout)
		}
	}
	if fallback == nil {
		return primary, nil
	}
	return NewProviderWithFallback(primary, fallback), nil
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Explain tries the primary provider first and falls back to the secondary on error
func (p *ProviderWithFallback) Explain(ctx context.Context, req Request) (string, error) {
	text, err := p.primary.Explain(ctx, req)
	if err != nil {
		slog.Warn("Primary explanation provider failed, falling back",
			"primary", p.primary.Name(), "fallback", p.fallback.Name(), "error", err)
		return p.fallback.Explain(ctx, req)
	}
	return text, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

type timeoutProvider struct {
	Provider
	timeout time.Duration
}

func withTimeout(p Provider, timeout time.Duration) Provider {
	return &timeoutProvider{Provider: p, timeout: timeout}
}

func (p *timeoutProvider) Explain(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.Provider.Explain(ctx, req)
}
