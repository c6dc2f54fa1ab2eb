package explain

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker guards a provider with a circuit breaker. After three consecutive
// failures the provider is not called for a minute.
type Breaker struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

// NewBreaker wraps provider in a circuit breaker
func NewBreaker(provider Provider) *Breaker {
	return &Breaker{
		provider: provider,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    provider.Name(),
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("Explanation provider circuit changed state",
					"provider", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

// Explain calls the wrapped provider unless the circuit is open
func (b *Breaker) Explain(ctx context.Context, req Request) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.provider.Explain(ctx, req)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// Name returns the wrapped provider name
func (b *Breaker) Name() string {
	return b.provider.Name()
}

// IsAvailable reports the wrapped provider's availability
func (b *Breaker) IsAvailable() error {
	return b.provider.IsAvailable()
}

// State returns the current circuit state
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}
