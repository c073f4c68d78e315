// Package pipeline turns raw language model responses into normalized
// domain records. Each call runs sanitize, repair, decode and normalize in
// order, plus reconcile or rank where the schema needs it, and returns the
// record with a report of everything that went wrong. No call fails: the
// worst case is a fully defaulted record.
package pipeline

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/extract"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/normalize"
	"github.com/sells-group/insight-cli/internal/rank"
	"github.com/sells-group/insight-cli/internal/reconcile"
)

// Schema names used in reports and on the command line.
const (
	SchemaCredit    = "credit"
	SchemaInvoice   = "invoice"
	SchemaPlatforms = "platforms"
	SchemaPolicy    = "policy"
	SchemaSuppliers = "suppliers"
	SchemaLedger    = "ledger"
	SchemaNames     = "names"
)

// Config tunes the repair and decode stages.
type Config struct {
	// LenientDecode retries failed decodes through jsonrepair.
	LenientDecode bool
	// CollapseWhitespace squeezes whitespace runs before decoding.
	CollapseWhitespace bool
}

// Pipeline holds only configuration and is safe for concurrent use.
type Pipeline struct {
	cfg Config
}

// New creates a Pipeline.
func New(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

type locator func(raw string) (extract.Span, bool)

func objectSpan(raw string) (extract.Span, bool) { return extract.Sanitize(raw) }

func objectOrRaw(raw string) (extract.Span, bool) { return extract.SanitizeOrRaw(raw), true }

func arrayOrObject(raw string) (extract.Span, bool) {
	if span, ok := extract.SanitizeArray(raw); ok {
		return span, true
	}
	return extract.Sanitize(raw)
}

// decode runs the first three stages. Extraction and decode failures are
// recorded on the report and yield an empty object.
func (p *Pipeline) decode(raw, schema string, locate locator, collapse bool) (extract.Value, *model.Report) {
	rep := &model.Report{RunID: uuid.NewString(), Schema: schema}
	log := zap.L().With(zap.String("schema", schema), zap.String("run_id", rep.RunID))

	span, ok := locate(raw)
	if !ok {
		rep.Add(model.IssueExtraction, "", "no JSON value found in response")
		log.Warn("pipeline: extraction failed", zap.Int("raw_len", len(raw)))
		return extract.EmptyObject(), rep
	}
	rep.Method = string(span.Method)

	repaired := extract.Repair(span.Text, collapse || p.cfg.CollapseWhitespace)
	out := extract.Decode(repaired, extract.DecodeOptions{Lenient: p.cfg.LenientDecode})
	if !out.OK {
		rep.Add(model.IssueDecode, "", out.Err.Error())
		log.Warn("pipeline: decode failed", zap.String("method", rep.Method), zap.Error(out.Err))
		return extract.EmptyObject(), rep
	}
	rep.Decoded = true
	if out.Repaired {
		log.Debug("pipeline: decoded after lenient repair", zap.String("method", rep.Method))
	}
	return out.Value, rep
}

// CreditScore normalizes a credit score analysis response.
func (p *Pipeline) CreditScore(raw string) (model.CreditScoreAnalysis, *model.Report) {
	v, rep := p.decode(raw, SchemaCredit, objectSpan, false)
	return normalize.CreditScore(v, rep), rep
}

// Ledger reads a ledger summary and checks that pending and paid add up to
// the total. A mismatch marks the report inconsistent; the values are
// returned as given.
func (p *Pipeline) Ledger(raw string) (model.LedgerSummary, *model.Report) {
	v, rep := p.decode(raw, SchemaLedger, objectSpan, false)
	ledger := normalize.Ledger(v, rep)
	reconcile.CheckLedger(ledger, rep)
	return ledger, rep
}

// Invoice normalizes an invoice extraction response and reconciles its
// amounts. A response declaring no_invoice_found yields the default
// record.
func (p *Pipeline) Invoice(raw string) (model.InvoiceDetails, *model.Report) {
	if normalize.IsNoInvoice(raw) {
		rep := &model.Report{RunID: uuid.NewString(), Schema: SchemaInvoice}
		return normalize.EmptyInvoice(), rep
	}

	v, rep := p.decode(raw, SchemaInvoice, objectSpan, false)
	inv := normalize.Invoice(v, rep)
	if inferred := reconcile.Invoice(&inv, v.Text(), rep); inferred != reconcile.InferredNone {
		zap.L().Debug("pipeline: inferred invoice amount",
			zap.String("run_id", rep.RunID),
			zap.String("field", string(inferred)),
		)
	}
	return inv, rep
}

// Platforms normalizes a marketplace analysis and ranks the discovered
// platforms. Whitespace is always collapsed because analysis responses
// are long multi-line objects. homepages supplies catalog metadata.
func (p *Pipeline) Platforms(raw string, discovered []string, homepages map[string]string) (model.PlatformAnalysisList, *model.Report) {
	v, rep := p.decode(raw, SchemaPlatforms, objectSpan, true)
	byName, recs := normalize.PlatformAnalysis(v, rep)
	return model.PlatformAnalysisList{
		Platforms:              rank.Platforms(discovered, byName, homepages),
		OverallRecommendations: recs,
	}, rep
}

// Policy normalizes one generated policy document. Text without any
// object is handed to the decoder as is.
func (p *Pipeline) Policy(raw, policyType string) (model.PolicyDocument, *model.Report) {
	v, rep := p.decode(raw, SchemaPolicy, objectOrRaw, false)
	return normalize.Policy(v, policyType, rep), rep
}

// Suppliers normalizes a supplier listing response, expected to be an
// array of listings.
func (p *Pipeline) Suppliers(raw string) ([]model.SupplierListing, *model.Report) {
	v, rep := p.decode(raw, SchemaSuppliers, arrayOrObject, false)
	if !rep.Decoded {
		return []model.SupplierListing{}, rep
	}
	return normalize.Suppliers(v, rep), rep
}

// Names reads a list of entity names such as suggested platforms.
func (p *Pipeline) Names(raw string) ([]string, *model.Report) {
	v, rep := p.decode(raw, SchemaNames, arrayOrObject, false)
	return normalize.Names(v), rep
}
