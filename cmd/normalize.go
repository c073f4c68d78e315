package main

import (
	"slices"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/insight-cli/internal/market"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/pipeline"
)

var normalizeSchemas = []string{
	pipeline.SchemaCredit,
	pipeline.SchemaInvoice,
	pipeline.SchemaPlatforms,
	pipeline.SchemaPolicy,
	pipeline.SchemaSuppliers,
	pipeline.SchemaLedger,
	pipeline.SchemaNames,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [files...]",
	Short: "Normalize saved model responses without calling a model",
	Long: `Runs the sanitize, repair, decode and normalize stages over raw model
responses read from files (or stdin) and prints each record with its report.
Files are processed in parallel (normalize.concurrency); output keeps input
order.

Schemas: credit, invoice, platforms, policy, suppliers, ledger, names.

Examples:
  normalize --schema credit response.txt
  normalize --schema platforms --names "Amazon,Flipkart,ONDC Network" analysis.txt
  normalize --schema policy --policy-type privacy_policy a.txt b.txt`,
	RunE: runNormalize,
}

func init() {
	f := normalizeCmd.Flags()
	f.String("schema", "", "record schema (required)")
	f.StringSlice("names", nil, "discovered platform names, for --schema platforms")
	f.String("policy-type", "policy", "policy type used when the response omits one")
	_ = normalizeCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(normalizeCmd)
}

type normalized struct {
	Source string        `json:"source" yaml:"source"`
	Record any           `json:"record" yaml:"record"`
	Report *model.Report `json:"report" yaml:"report"`
}

type normalizeOptions struct {
	schema     string
	names      []string
	policyType string
}

func normalizeRaw(pipe *pipeline.Pipeline, raw string, o normalizeOptions) (any, *model.Report) {
	switch o.schema {
	case pipeline.SchemaCredit:
		return pipe.CreditScore(raw)
	case pipeline.SchemaInvoice:
		return pipe.Invoice(raw)
	case pipeline.SchemaPlatforms:
		return pipe.Platforms(raw, o.names, market.Homepages())
	case pipeline.SchemaPolicy:
		return pipe.Policy(raw, o.policyType)
	case pipeline.SchemaSuppliers:
		return pipe.Suppliers(raw)
	case pipeline.SchemaLedger:
		return pipe.Ledger(raw)
	default:
		return pipe.Names(raw)
	}
}

func runNormalize(cmd *cobra.Command, args []string) error {
	var o normalizeOptions
	o.schema, _ = cmd.Flags().GetString("schema")
	o.names, _ = cmd.Flags().GetStringSlice("names")
	o.policyType, _ = cmd.Flags().GetString("policy-type")
	if !slices.Contains(normalizeSchemas, o.schema) {
		return eris.Errorf("unknown schema %q", o.schema)
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	pipe := newPipeline()
	out := make([]normalized, len(inputs))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(cfg.Normalize.Concurrency, 1))
	for i, path := range inputs {
		g.Go(func() error {
			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			rec, rep := normalizeRaw(pipe, string(data), o)
			out[i] = normalized{Source: displayName(path), Record: rec, Report: rep}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	issues := 0
	for _, n := range out {
		issues += len(n.Report.Issues)
	}
	zap.L().Info("normalize: done",
		zap.String("schema", o.schema),
		zap.Int("inputs", len(out)),
		zap.Int("issues", issues),
	)

	if len(out) == 1 {
		return printResult(cmd, out[0])
	}
	return printResult(cmd, out)
}
