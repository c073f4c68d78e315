// Package invoice extracts structured invoice fields from invoice text.
package invoice

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/insight-cli/internal/llm"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/pipeline"
	"github.com/sells-group/insight-cli/internal/resilience"
)

const extractPrompt = `You are an invoice analysis expert. Extract key information from the invoice below and return it as JSON.

Extract the invoice number, client or customer name, date, payment terms, industry (if mentioned), total amount, currency, line items (brief description and amount), tax or extra charges if applicable, pending amount if applicable and a short analysis of the invoice.

Return the data in this JSON structure:
{
    "invoice_number": "string",
    "client": "string",
    "date": "string",
    "payment_terms": "string",
    "industry": "string",
    "total_amount": number,
    "currency": "string",
    "line_items": [{"description": "string", "amount": number}],
    "tax_amount": number,
    "extra_charges": number,
    "pending_amount": number,
    "small_analysis": "string"
}

If a field is not clearly present, use "N/A" or 0.0 for amounts. If the text is not an invoice, reply with NO_INVOICE_FOUND.

Invoice:
`

// Result is one extracted invoice.
type Result struct {
	Details        model.InvoiceDetails `json:"invoice_details" yaml:"invoice_details"`
	TotalLineItems int                  `json:"total_line_items" yaml:"total_line_items"`
	Report         *model.Report        `json:"report" yaml:"report"`
}

// Options tunes a Service.
type Options struct {
	MaxTokens   int
	Temperature float64
	Retry       resilience.Policy
}

// Service extracts invoices.
type Service struct {
	gen  llm.Generator
	pipe *pipeline.Pipeline
	opts Options
}

// New creates a Service.
func New(gen llm.Generator, pipe *pipeline.Pipeline, opts Options) *Service {
	return &Service{gen: gen, pipe: pipe, opts: opts}
}

// Extract sends invoice text to the model and returns the normalized,
// reconciled invoice.
func (s *Service) Extract(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, eris.New("invoice: empty input")
	}

	req := llm.Request{
		Operation:   "invoice_extract",
		Prompt:      extractPrompt + text,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	}
	retry := s.opts.Retry
	retry.OnRetry = resilience.RetryLogger("llm", req.Operation)
	raw, err := resilience.Retry(ctx, retry, req.Operation, func(ctx context.Context) (string, error) {
		return s.gen.Generate(ctx, req)
	})
	if err != nil {
		return nil, eris.Wrap(err, "invoice: generate")
	}

	details, rep := s.pipe.Invoice(raw)
	return &Result{Details: details, TotalLineItems: len(details.LineItems), Report: rep}, nil
}
