package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/sells-group/insight-cli/internal/config"
	"github.com/sells-group/insight-cli/internal/cost"
	"github.com/sells-group/insight-cli/internal/resilience"
	"github.com/sells-group/insight-cli/pkg/anthropic"
)

type mockAnthropic struct {
	mock.Mock
}

func (m *mockAnthropic) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{Content: []anthropic.ContentBlock{{Type: "text", Text: text}}}
}

func apiError(code int) error {
	return &sdk.Error{
		StatusCode: code,
		Request:    httptest.NewRequest(http.MethodPost, "https://api.anthropic.com/v1/messages", nil),
		Response:   &http.Response{StatusCode: code},
	}
}

func TestAnthropicGenerator_Generate(t *testing.T) {
	client := &mockAnthropic{}
	client.On("CreateMessage", mock.Anything, mock.MatchedBy(func(req anthropic.MessageRequest) bool {
		return req.Model == "claude-haiku-4-5-20251001" &&
			req.MaxTokens == 1500 &&
			len(req.System) == 1 && req.System[0].CacheControl != nil &&
			req.Temperature != nil && *req.Temperature == 0.3 &&
			req.Messages[0].Content == "draft a cookie policy"
	})).Return(textResponse("  {\"content\": \"x\"}\n"), nil)

	g := NewAnthropic(client, "claude-haiku-4-5-20251001", nil)
	got, err := g.Generate(context.Background(), Request{
		Operation:   "policy",
		System:      "You draft policies.",
		Prompt:      "draft a cookie policy",
		MaxTokens:   1500,
		Temperature: 0.3,
		CacheSystem: true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"content": "x"}`, got)
	client.AssertExpectations(t)
}

func TestAnthropicGenerator_EmptyResponse(t *testing.T) {
	client := &mockAnthropic{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(textResponse("   "), nil)

	_, err := NewAnthropic(client, "m", nil).Generate(context.Background(), Request{Operation: "credit"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.False(t, resilience.IsPermanent(err))
}

func TestAnthropicGenerator_PermanentStatus(t *testing.T) {
	client := &mockAnthropic{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(nil, apiError(401))

	_, err := NewAnthropic(client, "m", nil).Generate(context.Background(), Request{Operation: "credit"})

	require.Error(t, err)
	assert.True(t, resilience.IsPermanent(err))
}

func TestAnthropicGenerator_TransientStatus(t *testing.T) {
	client := &mockAnthropic{}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(nil, apiError(529))

	_, err := NewAnthropic(client, "m", nil).Generate(context.Background(), Request{Operation: "credit"})

	require.Error(t, err)
	assert.False(t, resilience.IsPermanent(err))
}

type fakeModels struct {
	resp    *genai.GenerateContentResponse
	err     error
	model   string
	config  *genai.GenerateContentConfig
	prompts []string
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = cfg
	for _, c := range contents {
		for _, p := range c.Parts {
			f.prompts = append(f.prompts, p.Text)
		}
	}
	return f.resp, f.err
}

func geminiText(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(text, genai.RoleModel),
		}},
	}
}

func TestGeminiGenerator_Generate(t *testing.T) {
	fake := &fakeModels{resp: geminiText(`["Amazon"]`)}
	g := &GeminiGenerator{models: fake, model: "gemini-2.5-flash"}

	got, err := g.Generate(context.Background(), Request{
		System:      "Answer with JSON only.",
		Prompt:      "suggest platforms",
		MaxTokens:   300,
		Temperature: 0.2,
	})

	require.NoError(t, err)
	assert.Equal(t, `["Amazon"]`, got)
	assert.Equal(t, "gemini-2.5-flash", fake.model)
	assert.Equal(t, int32(300), fake.config.MaxOutputTokens)
	require.NotNil(t, fake.config.Temperature)
	assert.InDelta(t, 0.2, *fake.config.Temperature, 1e-6)
	require.NotNil(t, fake.config.SystemInstruction)
	assert.Equal(t, []string{"suggest platforms"}, fake.prompts)
}

func TestGenerators_RecordUsage(t *testing.T) {
	tracker := cost.NewTracker(cost.NewCalculator(cost.DefaultRates()))

	client := &mockAnthropic{}
	resp := textResponse("ok")
	resp.Usage = anthropic.TokenUsage{InputTokens: 1000, OutputTokens: 200, CacheReadInputTokens: 500}
	client.On("CreateMessage", mock.Anything, mock.Anything).Return(resp, nil)
	_, err := NewAnthropic(client, "claude-haiku-4-5-20251001", tracker).Generate(context.Background(), Request{Operation: "credit"})
	require.NoError(t, err)

	gresp := geminiText("ok")
	gresp.UsageMetadata = &genai.GenerateContentResponseUsageMetadata{PromptTokenCount: 400, CandidatesTokenCount: 100, CachedContentTokenCount: 100}
	g := &GeminiGenerator{models: &fakeModels{resp: gresp}, model: "gemini-2.5-flash", usage: tracker}
	_, err = g.Generate(context.Background(), Request{Operation: "market"})
	require.NoError(t, err)

	entries := tracker.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "claude-haiku-4-5-20251001", entries[0].Model)
	assert.Equal(t, cost.Usage{InputTokens: 1000, OutputTokens: 200, CacheReadTokens: 500}, entries[0].Usage)
	assert.Equal(t, "gemini-2.5-flash", entries[1].Model)
	assert.Equal(t, cost.Usage{InputTokens: 300, OutputTokens: 100, CacheReadTokens: 100}, entries[1].Usage)
	_, total := tracker.Total()
	assert.Greater(t, total, 0.0)
}

func TestGeminiGenerator_Errors(t *testing.T) {
	g := &GeminiGenerator{models: &fakeModels{err: genai.APIError{Code: 403, Message: "denied"}}, model: "m"}
	_, err := g.Generate(context.Background(), Request{Operation: "market"})
	assert.True(t, resilience.IsPermanent(err))

	g = &GeminiGenerator{models: &fakeModels{err: genai.APIError{Code: 503}}, model: "m"}
	_, err = g.Generate(context.Background(), Request{Operation: "market"})
	require.Error(t, err)
	assert.False(t, resilience.IsPermanent(err))

	g = &GeminiGenerator{models: &fakeModels{resp: &genai.GenerateContentResponse{}}, model: "m"}
	_, err = g.Generate(context.Background(), Request{Operation: "market"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "m", nil)
	assert.Error(t, err)
}

func TestWithRateLimit(t *testing.T) {
	calls := 0
	base := GeneratorFunc(func(context.Context, Request) (string, error) {
		calls++
		return "ok", nil
	})

	assert.IsType(t, GeneratorFunc(nil), WithRateLimit(base, 0, 1))

	g := WithRateLimit(base, 1000, 1)
	for i := 0; i < 3; i++ {
		_, err := g.Generate(context.Background(), Request{})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}

func TestWithRateLimit_ContextDeadline(t *testing.T) {
	g := WithRateLimit(GeneratorFunc(func(context.Context, Request) (string, error) {
		return "ok", nil
	}), 0.001, 1)

	_, err := g.Generate(context.Background(), Request{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = g.Generate(ctx, Request{})
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	_, err := New(context.Background(), config.LLMConfig{Provider: "anthropic"}, nil)
	assert.ErrorContains(t, err, "api key")

	_, err = New(context.Background(), config.LLMConfig{Provider: "groq"}, nil)
	assert.ErrorContains(t, err, "unknown provider")

	_, err = New(context.Background(), config.LLMConfig{Provider: "gemini"}, nil)
	assert.Error(t, err)

	g, err := New(context.Background(), config.LLMConfig{Provider: "anthropic", AnthropicKey: "k", RequestsPerSecond: 2, Burst: 1}, nil)
	require.NoError(t, err)
	assert.IsType(t, &limited{}, g)
}

func TestGeneratorFunc(t *testing.T) {
	g := GeneratorFunc(func(_ context.Context, req Request) (string, error) {
		return "", errors.New(req.Operation)
	})
	_, err := g.Generate(context.Background(), Request{Operation: "boom"})
	assert.EqualError(t, err, "boom")
}
