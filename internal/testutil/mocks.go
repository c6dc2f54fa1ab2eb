package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/fonemas/internal/explain"
)

// MockExplainer mocks an explanation provider
type MockExplainer struct {
	ProviderName string
	Responses    map[string]string // keyed by sentence
	Errors       map[string]error  // keyed by sentence
	Unavailable  error

	mu       sync.Mutex
	Requests []explain.Request
}

// Explain records the request and returns the configured response
func (m *MockExplainer) Explain(ctx context.Context, req explain.Request) (string, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[req.Sentence]; ok {
		return "", err
	}
	if text, ok := m.Responses[req.Sentence]; ok {
		return text, nil
	}
	return fmt.Sprintf("mock explanation of /%s/", req.Phonology), nil
}

// Name returns the provider name
func (m *MockExplainer) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// IsAvailable returns the configured availability error
func (m *MockExplainer) IsAvailable() error {
	return m.Unavailable
}

// Calls returns the number of recorded requests
func (m *MockExplainer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
