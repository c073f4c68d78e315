// Package llm adapts language model providers to a single text-in,
// text-out Generator used by the domain services.
package llm

import (
	"context"
)

// Request is one generation call.
type Request struct {
	// Operation names the call in logs and cost attribution.
	Operation   string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
	// CacheSystem marks the system prompt as shared by many requests.
	CacheSystem bool
}

// Generator produces raw model text for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
