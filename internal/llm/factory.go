package llm

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/insight-cli/internal/config"
	"github.com/sells-group/insight-cli/internal/cost"
	"github.com/sells-group/insight-cli/pkg/anthropic"
)

// New builds the configured provider's generator, rate limited. Token
// usage is recorded on usage, which may be nil.
func New(ctx context.Context, cfg config.LLMConfig, usage *cost.Tracker) (Generator, error) {
	var g Generator
	switch cfg.Provider {
	case "anthropic", "":
		if cfg.AnthropicKey == "" {
			return nil, eris.New("llm: anthropic api key is required (set ANTHROPIC_API_KEY)")
		}
		g = NewAnthropic(anthropic.NewClient(cfg.AnthropicKey), cfg.AnthropicModel, usage)
	case "gemini":
		gem, err := NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModel, usage)
		if err != nil {
			return nil, err
		}
		g = gem
	default:
		return nil, eris.Errorf("llm: unknown provider %q", cfg.Provider)
	}
	return WithRateLimit(g, cfg.RequestsPerSecond, cfg.Burst), nil
}
