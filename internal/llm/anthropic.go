package llm

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/insight-cli/internal/cost"
	"github.com/sells-group/insight-cli/internal/resilience"
	"github.com/sells-group/insight-cli/pkg/anthropic"
)

// ErrEmptyResponse is returned when a provider answers with no text.
var ErrEmptyResponse = eris.New("llm: empty response")

// AnthropicGenerator generates text with Claude.
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
	usage  *cost.Tracker
}

// NewAnthropic creates a generator for the given model. usage may be nil.
func NewAnthropic(client anthropic.Client, model string, usage *cost.Tracker) *AnthropicGenerator {
	return &AnthropicGenerator{client: client, model: model, usage: usage}
}

// Generate sends one user message. Errors carrying a non-retryable HTTP
// status are marked permanent.
func (g *AnthropicGenerator) Generate(ctx context.Context, req Request) (string, error) {
	msg := anthropic.MessageRequest{
		Model:     g.model,
		MaxTokens: int64(req.MaxTokens),
		Messages:  []anthropic.Message{{Role: "user", Content: req.Prompt}},
	}
	if req.CacheSystem {
		msg.System = anthropic.BuildCachedSystemBlocks(req.System, "5m")
	} else if req.System != "" {
		msg.System = []anthropic.SystemBlock{{Text: req.System}}
	}
	if req.Temperature > 0 {
		t := req.Temperature
		msg.Temperature = &t
	}

	resp, err := g.client.CreateMessage(ctx, msg)
	if err != nil {
		if code := anthropic.StatusCode(err); code != 0 && !resilience.IsTransientHTTPStatus(code) {
			return "", resilience.Permanent(eris.Wrapf(err, "llm: %s", req.Operation))
		}
		return "", eris.Wrapf(err, "llm: %s", req.Operation)
	}
	g.usage.Record(g.model, req.Operation, cost.Usage{
		InputTokens:      resp.Usage.InputTokens,
		OutputTokens:     resp.Usage.OutputTokens,
		CacheWriteTokens: resp.Usage.CacheCreationInputTokens,
		CacheReadTokens:  resp.Usage.CacheReadInputTokens,
	})

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", eris.Wrapf(ErrEmptyResponse, "llm: %s", req.Operation)
	}
	return text, nil
}
