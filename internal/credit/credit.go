// Package credit scores an invoice ledger with a language model.
package credit

import (
	"context"
	"slices"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/llm"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/pipeline"
	"github.com/sells-group/insight-cli/internal/resilience"
)

// ErrInconsistentLedger is returned in strict mode when pending and paid
// amounts do not add up to the total.
var ErrInconsistentLedger = eris.New("credit: ledger is inconsistent")

// Options tunes a Service.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Retry       resilience.Policy
	// Strict rejects ledgers that break the pending+paid=total rule
	// instead of scoring them with the report flagged.
	Strict bool
}

// Result is the scored ledger.
type Result struct {
	Analysis  model.CreditScoreAnalysis `json:"credit_score_analysis" yaml:"credit_score_analysis"`
	Timestamp string                    `json:"timestamp" yaml:"timestamp"`
	APIModel  string                    `json:"api_model" yaml:"api_model"`
	Report    *model.Report             `json:"report" yaml:"report"`
}

// Service scores ledgers.
type Service struct {
	gen  llm.Generator
	pipe *pipeline.Pipeline
	opts Options
	now  func() time.Time
}

// New creates a Service.
func New(gen llm.Generator, pipe *pipeline.Pipeline, opts Options) *Service {
	return &Service{gen: gen, pipe: pipe, opts: opts, now: time.Now}
}

// Score asks the model for a weighted credit score. ledgerReport carries
// issues found while reading the ledger; they are merged into the result
// report. Errors are returned only for invalid input or a generator that
// kept failing.
func (s *Service) Score(ctx context.Context, ledger model.LedgerSummary, ledgerReport *model.Report) (*Result, error) {
	if err := ledger.Validate(); err != nil {
		return nil, eris.Wrap(err, "credit: validate ledger")
	}
	if ledgerReport != nil && ledgerReport.Inconsistent {
		if s.opts.Strict {
			return nil, ErrInconsistentLedger
		}
		zap.L().Warn("credit: scoring inconsistent ledger",
			zap.Float64("total_amount", ledger.TotalAmount),
			zap.Float64("total_amount_pending", ledger.TotalAmountPending),
			zap.Float64("total_amount_paid", ledger.TotalAmountPaid),
		)
	}

	req := llm.Request{
		Operation:   "credit_score",
		Prompt:      Prompt(ledger),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	}
	retry := s.opts.Retry
	retry.OnRetry = resilience.RetryLogger("llm", req.Operation)
	raw, err := resilience.Retry(ctx, retry, req.Operation, func(ctx context.Context) (string, error) {
		return s.gen.Generate(ctx, req)
	})
	if err != nil {
		return nil, eris.Wrap(err, "credit: generate score")
	}

	analysis, rep := s.pipe.CreditScore(raw)
	if ledgerReport != nil {
		rep.Issues = slices.Concat(ledgerReport.Issues, rep.Issues)
		rep.Inconsistent = rep.Inconsistent || ledgerReport.Inconsistent
	}
	return &Result{
		Analysis:  analysis,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		APIModel:  s.opts.Model,
		Report:    rep,
	}, nil
}
