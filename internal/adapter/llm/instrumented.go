package llm

import (
	"context"
	"errors"
	"time"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// Observer receives one observation per generation call.
type Observer interface {
	ObserveGeneration(kind, outcome string, elapsed time.Duration)
}

// Outcomes reported to Observer.
const (
	OutcomeOK        = "ok"
	OutcomeMalformed = "malformed"
	OutcomeFailed    = "failed"
)

// InstrumentedGenerator reports call outcomes and latency.
type InstrumentedGenerator struct {
	next Generator
	obs  Observer
	now  func() time.Time
}

// NewInstrumentedGenerator wraps next, reporting to obs.
func NewInstrumentedGenerator(next Generator, obs Observer) *InstrumentedGenerator {
	return &InstrumentedGenerator{next: next, obs: obs, now: time.Now}
}

func (g *InstrumentedGenerator) Generate(ctx context.Context, req Request) (string, error) {
	start := g.now()
	out, err := g.next.Generate(ctx, req)

	outcome := OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrMalformedResponse):
		outcome = OutcomeMalformed
	default:
		outcome = OutcomeFailed
	}
	g.obs.ObserveGeneration(req.Kind, outcome, g.now().Sub(start))
	return out, err
}
