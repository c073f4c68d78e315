package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "insight-cli",
	Short: "Business insight generation for small enterprises",
	Long: `Generates credit scores, invoice extractions, marketplace rankings, legal
policies and supplier listings with a language model, and turns the model's
free-form answers into complete, typed records with a report of every issue
found along the way.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		usage.LogSummary()
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("format", formatJSON, "output format: json or yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
