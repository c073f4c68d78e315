package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/policy"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Draft legal policies for a business",
	Long: `Generates one document per requested policy type, following the compliance
frameworks of the business's country. Policy types are generated in
parallel (policy.concurrency). A type that keeps failing gets a placeholder
document and an UpstreamExhausted issue in its report.

Examples:
  policy --input request.json
  policy --input request.yaml --html > policies.html`,
	RunE: runPolicy,
}

func init() {
	f := policyCmd.Flags()
	f.String("input", "", "policy request JSON or YAML file (default: stdin)")
	f.Bool("html", false, "render the generated policies as an HTML page")

	rootCmd.AddCommand(policyCmd)
}

func runPolicy(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	path, _ := cmd.Flags().GetString("input")
	asHTML, _ := cmd.Flags().GetBool("html")

	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	req := model.PolicyRequest{
		BusinessDetails:  model.BusinessDetails{CollectsPersonalData: true},
		StrictCompliance: true,
	}
	if err := decodeInput(path, data, &req); err != nil {
		return err
	}
	gen, pipe, err := setup(ctx)
	if err != nil {
		return err
	}

	svc := policy.New(gen, pipe, policy.Options{
		Model:       cfg.LLM.Model(),
		MaxTokens:   cfg.Policy.MaxTokens,
		Temperature: cfg.Policy.Temperature,
		Concurrency: cfg.Policy.Concurrency,
		Retry:       retryPolicy(),
	})
	res, err := svc.Generate(ctx, req)
	if err != nil {
		return err
	}

	if asHTML {
		page, err := policy.RenderSetHTML(res.PolicySet)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), page)
		return err
	}
	return printResult(cmd, res)
}
