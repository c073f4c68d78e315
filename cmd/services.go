package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sells-group/insight-cli/internal/config"
	"github.com/sells-group/insight-cli/internal/cost"
	"github.com/sells-group/insight-cli/internal/llm"
	"github.com/sells-group/insight-cli/internal/pipeline"
	"github.com/sells-group/insight-cli/internal/resilience"
)

// usage totals token spend for the whole run; root's PostRun logs it.
var usage = cost.NewTracker(cost.NewCalculator(cost.DefaultRates()))

// newGenerator is replaced in tests.
var newGenerator = func(ctx context.Context, c config.LLMConfig, u *cost.Tracker) (llm.Generator, error) {
	return llm.New(ctx, c, u)
}

// commandContext is cancelled on SIGINT/SIGTERM or after llm.timeout_secs.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	if cfg.LLM.TimeoutSecs <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.LLM.TimeoutSecs)*time.Second)
	return ctx, func() {
		cancel()
		stop()
	}
}

func newPipeline() *pipeline.Pipeline {
	return pipeline.New(pipeline.Config{
		LenientDecode:      cfg.Pipeline.LenientDecode,
		CollapseWhitespace: cfg.Pipeline.CollapseWhitespace,
	})
}

func retryPolicy() resilience.Policy {
	return resilience.FromConfig(cfg.LLM.MaxRetries, cfg.LLM.InitialBackoffMs, cfg.LLM.MaxBackoffMs)
}

// setup validates the config and builds the generator and pipeline every
// model-backed command needs.
func setup(ctx context.Context) (llm.Generator, *pipeline.Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	gen, err := newGenerator(ctx, cfg.LLM, usage)
	if err != nil {
		return nil, nil, err
	}
	return gen, newPipeline(), nil
}
