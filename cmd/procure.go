package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/procurement"
)

var procureCmd = &cobra.Command{
	Use:   "procure",
	Short: "Find raw material suppliers",
	Long: `Discovers procurement platforms for a raw material and generates supplier
listings for the first few of them. Platforms whose listings cannot be
generated get a generic listing that links to a platform search.

Examples:
  procure --input material.json`,
	RunE: runProcure,
}

func init() {
	procureCmd.Flags().String("input", "", "material JSON or YAML file (default: stdin)")

	rootCmd.AddCommand(procureCmd)
}

func runProcure(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	path, _ := cmd.Flags().GetString("input")
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	var material model.MaterialDetails
	if err := decodeInput(path, data, &material); err != nil {
		return err
	}
	gen, pipe, err := setup(ctx)
	if err != nil {
		return err
	}

	svc := procurement.New(gen, pipe, procurement.Options{
		MaxPlatforms:     cfg.Procurement.MaxPlatforms,
		ListingPlatforms: cfg.Procurement.ListingPlatforms,
		Concurrency:      cfg.Procurement.Concurrency,
		Retry:            retryPolicy(),
	})
	res, err := svc.Analyze(ctx, material)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
