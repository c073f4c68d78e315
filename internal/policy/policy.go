// Package policy drafts legal policies for small businesses with a
// language model.
package policy

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

var errUnusable = eris.New("policy: response had no usable document")

// Options tunes a Service.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	// Concurrency bounds how many policy types are generated at once.
	Concurrency int
	Retry       resilience.Policy
}

// Result is a generated policy set with one report per policy type.
type Result struct {
	Business        model.BusinessDetails `json:"business" yaml:"business"`
	model.PolicySet `yaml:",inline"`

	Reports map[string]*model.Report `json:"reports" yaml:"reports"`
}

// Service generates policy sets.
type Service struct {
	gen  llm.Generator
	pipe *pipeline.Pipeline
	opts Options
	now  func() time.Time
}

// New creates a Service.
func New(gen llm.Generator, pipe *pipeline.Pipeline, opts Options) *Service {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Service{gen: gen, pipe: pipe, opts: opts, now: time.Now}
}

type generated struct {
	doc model.PolicyDocument
	rep *model.Report
}

// Generate drafts every requested policy type. A type whose generation
// keeps failing gets a placeholder document and an UpstreamExhausted
// issue; only an invalid request or a cancelled context fails the call.
func (s *Service) Generate(ctx context.Context, req model.PolicyRequest) (*Result, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	regions := ComplianceRegions(req.BusinessDetails.LocationCountry)

	types := uniqueTypes(req.PolicyTypes)
	out := make([]generated, len(types))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i, ptype := range types {
		g.Go(func() error {
			res, err := s.generateOne(gctx, req, regions, ptype)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "policy: generate")
	}

	result := &Result{
		Business: req.BusinessDetails,
		PolicySet: model.PolicySet{
			ComplianceRegions: regions,
			StrictCompliance:  req.StrictCompliance,
			GeneratedPolicies: make(map[string]model.PolicyDocument, len(types)),
			Timestamp:         s.now().UTC().Format(time.RFC3339),
			APIModel:          s.opts.Model,
		},
		Reports: make(map[string]*model.Report, len(types)),
	}
	for i, ptype := range types {
		result.GeneratedPolicies[ptype] = out[i].doc
		result.Reports[ptype] = out[i].rep
	}
	return result, nil
}

func (s *Service) generateOne(ctx context.Context, req model.PolicyRequest, regions []string, ptype string) (generated, error) {
	llmReq := llm.Request{
		Operation:   "policy_" + ptype,
		System:      SystemPrompt,
		Prompt:      Prompt(req.BusinessDetails, ptype, req.Language, regions, req.StrictCompliance),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
		CacheSystem: true,
	}

	retry := s.opts.Retry
	retry.OnRetry = resilience.RetryLogger("llm", llmReq.Operation)
	res, err := resilience.Retry(ctx, retry, llmReq.Operation, func(ctx context.Context) (generated, error) {
		raw, err := s.gen.Generate(ctx, llmReq)
		if err != nil {
			return generated{}, err
		}
		if strings.TrimSpace(raw) == "" {
			return generated{}, llm.ErrEmptyResponse
		}
		doc, rep := s.pipe.Policy(raw, ptype)
		if rep.Unusable() || strings.TrimSpace(doc.Content) == "" {
			return generated{}, errUnusable
		}
		return generated{doc: doc, rep: rep}, nil
	})
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil {
		return generated{}, ctx.Err()
	}

	zap.L().Warn("policy: using placeholder",
		zap.String("policy_type", ptype),
		zap.Error(err),
	)
	rep := &model.Report{RunID: uuid.NewString(), Schema: pipeline.SchemaPolicy}
	rep.Add(model.IssueUpstreamExhausted, "content", err.Error())
	return generated{doc: Placeholder(ptype), rep: rep}, nil
}

func uniqueTypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.TrimSpace(t)
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
