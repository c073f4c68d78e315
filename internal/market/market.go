// Package market finds and ranks the marketplaces a product should be
// listed on.
package market

import (
	"context"
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/llm"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/pipeline"
	"github.com/sells-group/insight-cli/internal/resilience"
)

const (
	suggestMaxTokens    = 500
	suggestTemperature  = 0.3
	analysisMaxTokens   = 4000
	analysisTemperature = 0.1
)

// Options tunes a Service.
type Options struct {
	// MaxTokens caps the analysis call. Zero uses 4000.
	MaxTokens int
	Retry     resilience.Policy
}

// Result is a ranked marketplace analysis.
type Result struct {
	model.PlatformAnalysisList `yaml:",inline"`

	B2B    bool          `json:"b2b" yaml:"b2b"`
	Report *model.Report `json:"report" yaml:"report"`
}

// Service analyzes products.
type Service struct {
	gen       llm.Generator
	pipe      *pipeline.Pipeline
	opts      Options
	homepages map[string]string
	known     map[string]bool
}

// New creates a Service.
func New(gen llm.Generator, pipe *pipeline.Pipeline, opts Options) *Service {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = analysisMaxTokens
	}
	homepages := Homepages()
	known := make(map[string]bool, len(homepages))
	for name := range homepages {
		known[name] = true
	}
	return &Service{gen: gen, pipe: pipe, opts: opts, homepages: homepages, known: known}
}

func (s *Service) generate(ctx context.Context, req llm.Request) (string, error) {
	retry := s.opts.Retry
	retry.OnRetry = resilience.RetryLogger("llm", req.Operation)
	return resilience.Retry(ctx, retry, req.Operation, func(ctx context.Context) (string, error) {
		return s.gen.Generate(ctx, req)
	})
}

// Discover returns the candidate platforms for a product: category
// matches, then model suggestions found in the catalog, then the
// essentials for the product type. Each name appears once, in first-seen
// order. A failed suggestion call only drops the suggestions.
func (s *Service) Discover(ctx context.Context, p model.ProductDetails) []string {
	b2b := IsB2B(p)
	var out []string
	add := func(names ...string) {
		for _, n := range names {
			if !slices.Contains(out, n) {
				out = append(out, n)
			}
		}
	}

	add(CategoryMatches(p.Category)...)

	raw, err := s.generate(ctx, llm.Request{
		Operation:   "market_suggest",
		Prompt:      SuggestPrompt(p, b2b),
		MaxTokens:   suggestMaxTokens,
		Temperature: suggestTemperature,
	})
	if err != nil {
		zap.L().Warn("market: platform suggestions failed", zap.String("product", p.Name), zap.Error(err))
	} else {
		names, rep := s.pipe.Names(raw)
		if !rep.Decoded {
			zap.L().Warn("market: unreadable platform suggestions", zap.String("run_id", rep.RunID))
		}
		for _, n := range names {
			if s.known[n] {
				add(n)
			}
		}
	}

	if b2b {
		add(essentialB2B...)
	} else {
		add(essentialB2C...)
	}
	return out
}

// Analyze discovers platforms and ranks them. Every discovered platform is
// in the result; platforms the model skipped carry the sentinel rank. An
// exhausted analysis call is recorded in the report rather than returned.
func (s *Service) Analyze(ctx context.Context, p model.ProductDetails) (*Result, error) {
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Category) == "" {
		return nil, eris.New("market: product needs a name or category")
	}
	b2b := IsB2B(p)
	platforms := s.Discover(ctx, p)

	req := llm.Request{
		Operation:   "market_analysis",
		System:      analysisSystem,
		Prompt:      AnalysisPrompt(p, platforms, b2b),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: analysisTemperature,
	}
	raw, err := s.generate(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, eris.Wrap(err, "market: analyze")
		}
		zap.L().Warn("market: analysis failed", zap.String("product", p.Name), zap.Error(err))
		raw = ""
	}

	list, rep := s.pipe.Platforms(raw, platforms, s.homepages)
	if err != nil {
		rep.Add(model.IssueUpstreamExhausted, "", err.Error())
	}
	return &Result{PlatformAnalysisList: list, B2B: b2b, Report: rep}, nil
}
