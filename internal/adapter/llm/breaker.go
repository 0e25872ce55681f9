package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// BreakerConfig controls when the generation circuit opens.
type BreakerConfig struct {
	FailureThreshold uint32        // consecutive failures before opening
	OpenTimeout      time.Duration // how long to stay open before probing
	HalfOpenRequests uint32        // probes allowed while half-open
}

// BreakerGenerator fails fast with domain.ErrGenerationFailed while the
// provider is known to be down.
type BreakerGenerator struct {
	next Generator
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerGenerator wraps next with a circuit breaker.
func NewBreakerGenerator(next Generator, cfg BreakerConfig, log *slog.Logger) *BreakerGenerator {
	log = log.With("adapter", "llm_breaker")
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "generation",
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		// Malformed output means the provider is up.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrMalformedResponse) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return &BreakerGenerator{next: next, cb: cb}
}

// Generate forwards to the wrapped generator unless the circuit is open.
func (b *BreakerGenerator) Generate(ctx context.Context, req Request) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Generate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%s call: %w: %w", req.Kind, domain.ErrGenerationFailed, err)
		}
		return "", err
	}
	return out.(string), nil
}

// State reports the breaker state, e.g. for readiness reporting.
func (b *BreakerGenerator) State() string {
	return b.cb.State().String()
}
