// Package procurement finds raw material suppliers across procurement
// platforms.
package procurement

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/insight-cli/internal/llm"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/pipeline"
	"github.com/sells-group/insight-cli/internal/resilience"
)

const (
	discoverMaxTokens   = 500
	discoverTemperature = 0.2
	listingMaxTokens    = 800
	listingTemperature  = 0.3
)

// Options tunes a Service.
type Options struct {
	// MaxPlatforms caps the discovered platform list. Default 8.
	MaxPlatforms int
	// ListingPlatforms is how many discovered platforms get supplier
	// listings. Default 5.
	ListingPlatforms int
	// Concurrency bounds parallel listing calls. Default 1.
	Concurrency int
	Retry       resilience.Policy
}

// Result is a procurement analysis with one report per listed platform.
type Result struct {
	model.ProcurementAnalysis `yaml:",inline"`

	Reports map[string]*model.Report `json:"reports" yaml:"reports"`
}

// Service runs procurement analyses.
type Service struct {
	gen  llm.Generator
	pipe *pipeline.Pipeline
	opts Options
	now  func() time.Time
}

// New creates a Service.
func New(gen llm.Generator, pipe *pipeline.Pipeline, opts Options) *Service {
	if opts.MaxPlatforms <= 0 {
		opts.MaxPlatforms = 8
	}
	if opts.ListingPlatforms <= 0 {
		opts.ListingPlatforms = 5
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Service{gen: gen, pipe: pipe, opts: opts, now: time.Now}
}

func (s *Service) generate(ctx context.Context, req llm.Request) (string, error) {
	retry := s.opts.Retry
	retry.OnRetry = resilience.RetryLogger("llm", req.Operation)
	return resilience.Retry(ctx, retry, req.Operation, func(ctx context.Context) (string, error) {
		return s.gen.Generate(ctx, req)
	})
}

// Discover asks the model for suitable platforms, keeps those in the
// catalog, appends any missing essentials and caps the list. If the call
// fails or its answer cannot be read, the fixed fallback list is used.
func (s *Service) Discover(ctx context.Context, m model.MaterialDetails) []string {
	raw, err := s.generate(ctx, llm.Request{
		Operation:   "procurement_discover",
		Prompt:      DiscoverPrompt(m),
		MaxTokens:   discoverMaxTokens,
		Temperature: discoverTemperature,
	})
	if err != nil {
		zap.L().Warn("procurement: discovery failed, using fallback platforms",
			zap.String("material", m.MaterialName), zap.Error(err))
		return slices.Clone(fallbackPlatforms)
	}
	names, rep := s.pipe.Names(raw)
	if !rep.Decoded {
		zap.L().Warn("procurement: unreadable discovery, using fallback platforms",
			zap.String("run_id", rep.RunID))
		return slices.Clone(fallbackPlatforms)
	}

	var out []string
	for _, n := range names {
		if _, ok := homepage(n); ok {
			out = append(out, n)
		}
	}
	for _, e := range essentials {
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	if len(out) > s.opts.MaxPlatforms {
		out = out[:s.opts.MaxPlatforms]
	}
	return out
}

// Listings generates supplier listings for one platform. A failed call or
// an unreadable answer yields the fallback listing; the report says which.
func (s *Service) Listings(ctx context.Context, m model.MaterialDetails, platform string) ([]model.SupplierListing, *model.Report) {
	raw, err := s.generate(ctx, llm.Request{
		Operation:   "procurement_listings",
		Prompt:      ListingPrompt(m, platform),
		MaxTokens:   listingMaxTokens,
		Temperature: listingTemperature,
	})
	if err != nil {
		zap.L().Warn("procurement: listings failed, using fallback",
			zap.String("platform", platform), zap.Error(err))
		rep := &model.Report{RunID: uuid.NewString(), Schema: pipeline.SchemaSuppliers}
		rep.Add(model.IssueUpstreamExhausted, "", err.Error())
		return FallbackListing(platform, m), rep
	}

	listings, rep := s.pipe.Suppliers(raw)
	if rep.Unusable() {
		return FallbackListing(platform, m), rep
	}
	return listings, rep
}

// Analyze discovers platforms and fetches supplier listings for the first
// ListingPlatforms of them.
func (s *Service) Analyze(ctx context.Context, m model.MaterialDetails) (*Result, error) {
	if strings.TrimSpace(m.MaterialName) == "" {
		return nil, eris.New("procurement: material_name is required")
	}

	platforms := s.Discover(ctx, m)
	listed := platforms[:min(len(platforms), s.opts.ListingPlatforms)]

	listings := make([][]model.SupplierListing, len(listed))
	reports := make([]*model.Report, len(listed))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, p := range listed {
		g.Go(func() error {
			listings[i], reports[i] = s.Listings(gctx, m, p)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "procurement: listings")
	}

	res := &Result{
		ProcurementAnalysis: model.ProcurementAnalysis{
			MaterialDetails:       m,
			AnalysisTimestamp:     s.now().UTC().Format(time.RFC3339),
			DiscoveredPlatforms:   platforms,
			PlatformSearchResults: make(map[string][]model.SupplierListing, len(listed)),
		},
		Reports: make(map[string]*model.Report, len(listed)),
	}
	for i, p := range listed {
		res.PlatformSearchResults[p] = listings[i]
		res.Reports[p] = reports[i]
	}
	return res, nil
}
