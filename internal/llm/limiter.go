package llm

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// limited throttles calls to the wrapped generator.
type limited struct {
	next    Generator
	limiter *rate.Limiter
}

// WithRateLimit wraps g so that at most rps calls start per second. A
// non-positive rps returns g unchanged.
func WithRateLimit(g Generator, rps float64, burst int) Generator {
	if rps <= 0 {
		return g
	}
	if burst < 1 {
		burst = 1
	}
	return &limited{next: g, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (l *limited) Generate(ctx context.Context, req Request) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "llm: rate limit wait")
	}
	return l.next.Generate(ctx, req)
}
