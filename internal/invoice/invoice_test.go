package invoice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/insight-cli/internal/llm"
	"github.com/sells-group/insight-cli/internal/llm/mocks"
	"github.com/sells-group/insight-cli/internal/pipeline"
	"github.com/sells-group/insight-cli/internal/resilience"
)

func newService(gen llm.Generator) *Service {
	return New(gen, pipeline.New(pipeline.Config{}), Options{
		MaxTokens: 800,
		Retry:     resilience.Policy{MaxRetries: 1, InitialBackoff: time.Millisecond},
	})
}

func TestExtract(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(req llm.Request) bool {
		return strings.HasSuffix(req.Prompt, "INVOICE #88\nWidgets 600\nGST 18%\nTotal 708") && req.MaxTokens == 800
	})).Return(`{
		"invoice_number": "88",
		"client": "Acme",
		"total_amount": 708,
		"currency": "INR",
		"line_items": [{"description": "Widgets", "amount": 600}],
		"small_analysis": "GST invoice",
	}`, nil).Once()

	res, err := newService(gen).Extract(context.Background(), "INVOICE #88\nWidgets 600\nGST 18%\nTotal 708")

	require.NoError(t, err)
	assert.Equal(t, "88", res.Details.InvoiceNumber)
	assert.Equal(t, 1, res.TotalLineItems)
	assert.Equal(t, 108.0, res.Details.TaxAmount)
	assert.Equal(t, 0.0, res.Details.ExtraCharges)
	assert.Equal(t, "Not specified", res.Details.PaymentTerms)
	assert.Empty(t, res.Report.Issues)
}

func TestExtract_NoInvoice(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, mock.Anything).Return("NO_INVOICE_FOUND", nil).Once()

	res, err := newService(gen).Extract(context.Background(), "a grocery list")

	require.NoError(t, err)
	assert.Equal(t, "Unknown", res.Details.Client)
	assert.Zero(t, res.TotalLineItems)
}

func TestExtract_EmptyInput(t *testing.T) {
	_, err := newService(mocks.NewMockGenerator(t)).Extract(context.Background(), "  \n")
	assert.Error(t, err)
}

func TestExtract_GeneratorExhausted(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", assert.AnError).Times(2)

	_, err := newService(gen).Extract(context.Background(), "INVOICE")

	assert.ErrorIs(t, err, resilience.ErrUpstreamExhausted)
}
