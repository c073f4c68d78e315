package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/insight-cli/internal/invoice"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice [file]",
	Short: "Extract structured fields from invoice text",
	Long: `Sends plain invoice text (already OCR'd) to the model and returns the
normalized invoice. When the model reports no tax or extra charges, the gap
between the total and the line items is assigned to one of them based on
the wording of the response.

Examples:
  invoice scan.txt
  pdftotext bill.pdf - | invoice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInvoice,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
}

func runInvoice(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	gen, pipe, err := setup(ctx)
	if err != nil {
		return err
	}

	svc := invoice.New(gen, pipe, invoice.Options{
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Retry:       retryPolicy(),
	})
	res, err := svc.Extract(ctx, string(data))
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
