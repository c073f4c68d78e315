package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/credit"
)

var creditCmd = &cobra.Command{
	Use:   "credit",
	Short: "Score an invoice ledger",
	Long: `Reads a ledger summary (no_of_invoices, total_amount, total_amount_pending,
total_amount_paid, tax, extra_charges, payment_completion_rate,
paid_to_pending_ratio) and asks the model for a weighted credit score.

Ledgers whose pending and paid amounts do not add up to the total are scored
with the report flagged as inconsistent, or rejected with --strict.

Examples:
  credit --input ledger.json
  cat ledger.json | credit --format yaml`,
	RunE: runCredit,
}

func init() {
	f := creditCmd.Flags()
	f.String("input", "", "ledger JSON file (default: stdin)")
	f.Bool("strict", false, "reject inconsistent ledgers")

	rootCmd.AddCommand(creditCmd)
}

func runCredit(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	path, _ := cmd.Flags().GetString("input")
	strict, _ := cmd.Flags().GetBool("strict")

	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	gen, pipe, err := setup(ctx)
	if err != nil {
		return err
	}

	ledger, rep := pipe.Ledger(string(data))
	if !rep.Decoded {
		zap.L().Warn("credit: ledger input was not valid JSON", zap.String("input", displayName(path)))
	}

	svc := credit.New(gen, pipe, credit.Options{
		Model:       cfg.LLM.Model(),
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Retry:       retryPolicy(),
		Strict:      strict,
	})
	res, err := svc.Score(ctx, ledger, rep)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
