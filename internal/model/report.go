// Package model defines the records produced by the insight commands and
// the report that accompanies each of them.
package model

// IssueKind classifies a problem found while turning a model response into
// a typed record.
type IssueKind string

const (
	IssueExtraction        IssueKind = "extraction_failure"      // no JSON-like span in the text
	IssueDecode            IssueKind = "decode_failure"          // span present but not parseable
	IssueFieldCoercion     IssueKind = "field_coercion_failure"  // one field had the wrong type
	IssueBusinessRule      IssueKind = "business_rule_violation" // cross-field invariant broken
	IssueUpstreamExhausted IssueKind = "upstream_exhausted"      // text source failed repeatedly
)

// Issue is a single diagnostic attached to a normalized record.
type Issue struct {
	Kind   IssueKind `json:"kind" yaml:"kind"`
	Field  string    `json:"field,omitempty" yaml:"field,omitempty"`
	Detail string    `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Report travels beside every normalized record. A record with issues is
// still structurally complete; the caller decides whether to reject it.
type Report struct {
	RunID        string  `json:"run_id" yaml:"run_id"`
	Schema       string  `json:"schema" yaml:"schema"`
	Method       string  `json:"method,omitempty" yaml:"method,omitempty"`
	Decoded      bool    `json:"decoded" yaml:"decoded"`
	Inconsistent bool    `json:"inconsistent" yaml:"inconsistent"`
	Issues       []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Add appends an issue. A nil report discards it.
func (r *Report) Add(kind IssueKind, field, detail string) {
	if r == nil {
		return
	}
	r.Issues = append(r.Issues, Issue{Kind: kind, Field: field, Detail: detail})
	if kind == IssueBusinessRule {
		r.Inconsistent = true
	}
}

// Has reports whether at least one issue of the given kind was recorded.
func (r *Report) Has(kind IssueKind) bool {
	return r.Count(kind) > 0
}

// Count returns the number of issues of the given kind.
func (r *Report) Count(kind IssueKind) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, is := range r.Issues {
		if is.Kind == kind {
			n++
		}
	}
	return n
}

// Unusable reports whether the record was built from defaults only because
// nothing could be extracted or decoded.
func (r *Report) Unusable() bool {
	return r.Has(IssueExtraction) || r.Has(IssueDecode)
}
