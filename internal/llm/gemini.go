package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/rotisserie/eris"
	"google.golang.org/genai"

	"github.com/sells-group/insight-cli/internal/cost"
	"github.com/sells-group/insight-cli/internal/resilience"
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator generates text with Gemini.
type GeminiGenerator struct {
	models contentGenerator
	model  string
	usage  *cost.Tracker
}

// NewGemini creates a Gemini API client for the given model. usage may be
// nil.
func NewGemini(ctx context.Context, apiKey, model string, usage *cost.Tracker) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, eris.New("llm: gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, eris.Wrap(err, "llm: create gemini client")
	}
	return &GeminiGenerator{models: client.Models, model: model, usage: usage}, nil
}

// Generate sends one user turn with an optional system instruction.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}

	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	resp, err := g.models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && !resilience.IsTransientHTTPStatus(apiErr.Code) {
			return "", resilience.Permanent(eris.Wrapf(err, "llm: %s", req.Operation))
		}
		return "", eris.Wrapf(err, "llm: %s", req.Operation)
	}
	if md := resp.UsageMetadata; md != nil {
		g.usage.Record(g.model, req.Operation, cost.Usage{
			InputTokens:     int64(md.PromptTokenCount - md.CachedContentTokenCount),
			OutputTokens:    int64(md.CandidatesTokenCount),
			CacheReadTokens: int64(md.CachedContentTokenCount),
		})
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", eris.Wrapf(ErrEmptyResponse, "llm: %s", req.Operation)
	}
	return text, nil
}
