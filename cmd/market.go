package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/insight-cli/internal/market"
	"github.com/sells-group/insight-cli/internal/model"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Rank marketplaces for a product",
	Long: `Classifies the product as B2B or B2C, discovers candidate marketplaces from
the category map, model suggestions and the essentials for its type, then asks
the model to rank them. Every discovered platform is listed; those the model
left out rank last.

Examples:
  market --input product.json
  market --input product.yaml --format yaml`,
	RunE: runMarket,
}

func init() {
	marketCmd.Flags().String("input", "", "product JSON or YAML file (default: stdin)")

	rootCmd.AddCommand(marketCmd)
}

func runMarket(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	path, _ := cmd.Flags().GetString("input")
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	var product model.ProductDetails
	if err := decodeInput(path, data, &product); err != nil {
		return err
	}
	gen, pipe, err := setup(ctx)
	if err != nil {
		return err
	}

	svc := market.New(gen, pipe, market.Options{Retry: retryPolicy()})
	res, err := svc.Analyze(ctx, product)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
