package pipeline

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/insight-cli/internal/extract"
	"github.com/sells-group/insight-cli/internal/model"
)

var hostile = []string{
	"",
	"   ",
	"Sorry, I cannot help with that.",
	"{",
	"}{",
	`{"a": {"b": 1}`,
	"```json\n\n```",
	"```json\n{\"a\": }\n```",
	`{"final_weighted_credit_score": [1, 2], "factor_breakdown": "none"}`,
	`[1, 2, 3]`,
	`{"line_items": {"description": "x"}}`,
	"\x00\xff\xfe",
	`{"platform_analysis": {"Amazon": {"rank": "first"}}}`,
}

func TestTotality_EveryRecordIsComplete(t *testing.T) {
	p := New(Config{})
	for _, raw := range hostile {
		assert.NotPanics(t, func() {
			credit, rep := p.CreditScore(raw)
			require.NotNil(t, rep)
			assert.NotEmpty(t, credit.ScoreCategory)
			assert.NotNil(t, credit.DetailedAnalysis.Strengths)
			assert.NotEmpty(t, credit.FactorBreakdown.TaxCompliance.Comment)

			inv, _ := p.Invoice(raw)
			assert.NotEmpty(t, inv.Currency)
			assert.NotNil(t, inv.LineItems)

			list, _ := p.Platforms(raw, []string{"Amazon", "Flipkart"}, nil)
			assert.Len(t, list.Platforms, 2)
			assert.NotNil(t, list.OverallRecommendations.Top3Platforms)

			doc, _ := p.Policy(raw, "privacy_policy")
			assert.NotEmpty(t, doc.PolicyType)

			suppliers, _ := p.Suppliers(raw)
			assert.NotNil(t, suppliers)

			names, _ := p.Names(raw)
			assert.NotNil(t, names)

			_, err := json.Marshal(credit)
			assert.NoError(t, err)
		}, "input %q", raw)
	}
}

func TestCompleteness_CreditJSONHasEveryField(t *testing.T) {
	credit, _ := New(Config{}).CreditScore("no json here")

	b, err := json.Marshal(credit)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	for _, key := range []string{"final_weighted_credit_score", "score_category", "factor_breakdown", "detailed_analysis", "recommendations"} {
		assert.Contains(t, m, key)
	}
	breakdown := m["factor_breakdown"].(map[string]any)
	for _, key := range []string{"payment_completion_rate", "paid_to_pending_ratio", "tax_compliance", "extra_charges_management"} {
		require.Contains(t, breakdown, key)
		factor := breakdown[key].(map[string]any)
		for _, fk := range []string{"actual_value", "individual_score", "weighted_score", "weight_percentage", "comment"} {
			assert.Contains(t, factor, fk)
		}
	}
	details := m["detailed_analysis"].(map[string]any)
	assert.Equal(t, []any{}, details["strengths"])
}

func TestCompleteness_InvoiceJSONHasEveryField(t *testing.T) {
	inv, _ := New(Config{}).Invoice("")

	b, err := json.Marshal(inv)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, key := range []string{
		"invoice_number", "client", "date", "payment_terms", "industry", "total_amount",
		"currency", "pending_amount", "tax_amount", "extra_charges", "line_items", "small_analysis",
	} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, []any{}, m["line_items"])
}

func TestFencedExtraction(t *testing.T) {
	v, rep := New(Config{}).decode("here is it ```json\n{\"a\": 1,}\n``` done", "test", objectSpan, false)

	assert.True(t, rep.Decoded)
	assert.Equal(t, string(extract.MethodFenced), rep.Method)
	assert.Equal(t, map[string]any{"a": json.Number("1")}, v.Interface())
	assert.Empty(t, rep.Issues)
}

func TestUnbalancedBraces_IsExtractionFailure(t *testing.T) {
	credit, rep := New(Config{}).CreditScore(`{"a": {"b": 1}`)

	assert.True(t, rep.Has(model.IssueExtraction))
	assert.True(t, rep.Unusable())
	assert.False(t, rep.Decoded)
	assert.Equal(t, "Unknown", credit.ScoreCategory)
}

func TestDecodeFailure_YieldsDefaults(t *testing.T) {
	credit, rep := New(Config{}).CreditScore(`{"score_category": 'Good'}`)

	assert.True(t, rep.Has(model.IssueDecode))
	assert.Equal(t, "Unknown", credit.ScoreCategory)
}

func TestDeeplyNestedInput_IsDecodeFailure(t *testing.T) {
	const depth = 1_000_000
	arrays := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	objects := strings.Repeat(`{"a":`, depth) + "1" + strings.Repeat("}", depth)

	for _, cfg := range []Config{{}, {LenientDecode: true}} {
		p := New(cfg)

		names, rep := p.Names(arrays)
		assert.Empty(t, names)
		assert.True(t, rep.Has(model.IssueDecode))

		credit, rep := p.CreditScore(objects)
		assert.True(t, rep.Has(model.IssueDecode))
		assert.Equal(t, "Unknown", credit.ScoreCategory)
	}
}

func TestLenientDecode(t *testing.T) {
	credit, rep := New(Config{LenientDecode: true}).CreditScore(`{"score_category": 'Good'}`)

	assert.False(t, rep.Has(model.IssueDecode))
	assert.True(t, rep.Decoded)
	assert.Equal(t, "Good", credit.ScoreCategory)
}

func TestInvoice_TaxInference(t *testing.T) {
	raw := "Extracted:\n```json\n" + `{
		"invoice_number": "INV-7",
		"total_amount": 1000,
		"tax_amount": 0,
		"extra_charges": 0,
		"small_analysis": "Subtotal plus VAT",
		"line_items": [{"description": "Consulting", "amount": 900}]
	}` + "\n```"

	inv, rep := New(Config{}).Invoice(raw)

	assert.Empty(t, rep.Issues)
	assert.Equal(t, 100.00, inv.TaxAmount)
	assert.Equal(t, 0.00, inv.ExtraCharges)
	assert.Equal(t, "INV-7", inv.InvoiceNumber)
}

func TestInvoice_ExtraChargesInference(t *testing.T) {
	inv, _ := New(Config{}).Invoice(`{"total_amount": "250.50", "line_items": [{"description": "Chairs", "amount": 200}]}`)

	assert.Equal(t, 0.0, inv.TaxAmount)
	assert.Equal(t, 50.5, inv.ExtraCharges)
	assert.Equal(t, 250.5, inv.TotalAmount)
}

func TestInvoice_NoInvoiceFound(t *testing.T) {
	inv, rep := New(Config{}).Invoice("NO_INVOICE_FOUND")

	assert.Empty(t, rep.Issues)
	assert.Equal(t, "Unknown", inv.InvoiceNumber)
	assert.Equal(t, []model.LineItem{}, inv.LineItems)
}

func TestLedger_BusinessRuleFlag(t *testing.T) {
	ledger, rep := New(Config{}).Ledger(`{"no_of_invoices": 4, "total_amount_pending": 40000.02, "total_amount_paid": 10000, "total_amount": 50000}`)

	assert.True(t, rep.Inconsistent)
	assert.True(t, rep.Has(model.IssueBusinessRule))
	assert.False(t, rep.Unusable())
	assert.Equal(t, 40000.02, ledger.TotalAmountPending)
	assert.Equal(t, 10000.0, ledger.TotalAmountPaid)
	assert.Equal(t, 50000.0, ledger.TotalAmount)
}

func TestPlatforms_StableSort(t *testing.T) {
	raw := `{"platform_analysis": {"B": {"rank": 2, "score": 7}}, "overall_recommendations": {}}`

	list, rep := New(Config{}).Platforms(raw, []string{"A", "B", "C"}, map[string]string{"A": "https://a.example"})

	assert.Empty(t, rep.Issues)
	require.Len(t, list.Platforms, 3)
	assert.Equal(t, "B", list.Platforms[0].Name)
	assert.Equal(t, "A", list.Platforms[1].Name)
	assert.Equal(t, "C", list.Platforms[2].Name)
	assert.Equal(t, model.SentinelRank, list.Platforms[1].Rank)
	assert.Equal(t, "https://a.example", list.Platforms[1].Homepage)
}

func TestPolicy_PassThroughIsDecoded(t *testing.T) {
	doc, rep := New(Config{}).Policy(`"just a string"`, "cookie_policy")

	assert.Equal(t, string(extract.MethodPassThrough), rep.Method)
	assert.True(t, rep.Decoded)
	assert.True(t, rep.Has(model.IssueFieldCoercion))
	assert.Equal(t, "cookie_policy", doc.PolicyType)
}

func TestPolicy_Object(t *testing.T) {
	doc, rep := New(Config{}).Policy("{\n  \"policy_type\": \"privacy_policy\",\n  \"content\": \"# Privacy\\nWe respect it.\"\n}", "privacy_policy")

	assert.Empty(t, rep.Issues)
	assert.Equal(t, "# Privacy\nWe respect it.", doc.Content)
}

func TestSuppliers(t *testing.T) {
	list, rep := New(Config{}).Suppliers("Found these:\n[{\"title\": \"Steel\", \"supplier_details\": {\"company_name\": \"Tata\"}},]")

	assert.Equal(t, string(extract.MethodArrayScan), rep.Method)
	require.Len(t, list, 1)
	assert.Equal(t, "Tata", list[0].SupplierDetails.CompanyName)
}

func TestNames(t *testing.T) {
	names, _ := New(Config{}).Names(`Platforms: ["Amazon", "Meesho", "Amazon"]`)
	assert.Equal(t, []string{"Amazon", "Meesho"}, names)
}

func TestReportRunIDsAreUnique(t *testing.T) {
	p := New(Config{})
	_, a := p.CreditScore("{}")
	_, b := p.CreditScore("{}")
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, SchemaCredit, a.Schema)
}

func TestConcurrentUse(t *testing.T) {
	p := New(Config{CollapseWhitespace: true})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv, _ := p.Invoice(`{"total_amount": 10, "line_items": [{"description": "a", "amount": 8}], "note": "gst"}`)
			assert.Equal(t, 2.0, inv.TaxAmount)
		}()
	}
	wg.Wait()
}
