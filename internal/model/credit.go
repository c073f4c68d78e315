package model

import "github.com/rotisserie/eris"

// Factor names used as keys of the credit score factor breakdown.
const (
	FactorPaymentCompletionRate  = "payment_completion_rate"
	FactorPaidToPendingRatio     = "paid_to_pending_ratio"
	FactorTaxCompliance          = "tax_compliance"
	FactorExtraChargesManagement = "extra_charges_management"
)

// CreditScoreAnalysis is the normalized weighted credit score produced from
// a model response.
type CreditScoreAnalysis struct {
	FinalWeightedCreditScore float64          `json:"final_weighted_credit_score" yaml:"final_weighted_credit_score"`
	ScoreCategory            string           `json:"score_category" yaml:"score_category"`
	FactorBreakdown          FactorBreakdown  `json:"factor_breakdown" yaml:"factor_breakdown"`
	DetailedAnalysis         DetailedAnalysis `json:"detailed_analysis" yaml:"detailed_analysis"`
	Recommendations          Recommendations  `json:"recommendations" yaml:"recommendations"`
}

// FactorBreakdown holds the four weighted scoring factors.
type FactorBreakdown struct {
	PaymentCompletionRate  Factor `json:"payment_completion_rate" yaml:"payment_completion_rate"`
	PaidToPendingRatio     Factor `json:"paid_to_pending_ratio" yaml:"paid_to_pending_ratio"`
	TaxCompliance          Factor `json:"tax_compliance" yaml:"tax_compliance"`
	ExtraChargesManagement Factor `json:"extra_charges_management" yaml:"extra_charges_management"`
}

// Factor is one scored component of the credit score.
type Factor struct {
	ActualValue      float64 `json:"actual_value" yaml:"actual_value"`
	IndividualScore  float64 `json:"individual_score" yaml:"individual_score"`
	WeightedScore    float64 `json:"weighted_score" yaml:"weighted_score"`
	WeightPercentage int     `json:"weight_percentage" yaml:"weight_percentage"`
	Comment          string  `json:"comment" yaml:"comment"`
}

// DetailedAnalysis is the narrative part of the credit analysis.
type DetailedAnalysis struct {
	Strengths               []string `json:"strengths" yaml:"strengths"`
	Weaknesses              []string `json:"weaknesses" yaml:"weaknesses"`
	RiskAssessment          string   `json:"risk_assessment" yaml:"risk_assessment"`
	CreditworthinessSummary []string `json:"creditworthiness_summary" yaml:"creditworthiness_summary"`
}

// Recommendations lists suggested follow-ups.
type Recommendations struct {
	ImmediateActions     []string `json:"immediate_actions" yaml:"immediate_actions"`
	LongTermImprovements []string `json:"long_term_improvements" yaml:"long_term_improvements"`
	PriorityFocusAreas   []string `json:"priority_focus_areas" yaml:"priority_focus_areas"`
}

// LedgerSummary is the aggregated invoice ledger a credit score is computed
// from.
type LedgerSummary struct {
	NoOfInvoices          int     `json:"no_of_invoices" yaml:"no_of_invoices"`
	TotalAmount           float64 `json:"total_amount" yaml:"total_amount"`
	TotalAmountPending    float64 `json:"total_amount_pending" yaml:"total_amount_pending"`
	TotalAmountPaid       float64 `json:"total_amount_paid" yaml:"total_amount_paid"`
	Tax                   float64 `json:"tax" yaml:"tax"`
	ExtraCharges          float64 `json:"extra_charges" yaml:"extra_charges"`
	PaymentCompletionRate float64 `json:"payment_completion_rate" yaml:"payment_completion_rate"`
	PaidToPendingRatio    float64 `json:"paid_to_pending_ratio" yaml:"paid_to_pending_ratio"`
}

// Validate checks per-field ranges. The pending+paid=total rule is a
// business rule checked by the reconciler, not here.
func (l LedgerSummary) Validate() error {
	if l.NoOfInvoices < 1 {
		return eris.New("ledger: no_of_invoices must be >= 1")
	}
	for name, v := range map[string]float64{
		"total_amount":          l.TotalAmount,
		"total_amount_pending":  l.TotalAmountPending,
		"total_amount_paid":     l.TotalAmountPaid,
		"tax":                   l.Tax,
		"extra_charges":         l.ExtraCharges,
		"paid_to_pending_ratio": l.PaidToPendingRatio,
	} {
		if v < 0 {
			return eris.Errorf("ledger: %s must be >= 0", name)
		}
	}
	if l.PaymentCompletionRate < 0 || l.PaymentCompletionRate > 1 {
		return eris.New("ledger: payment_completion_rate must be within [0, 1]")
	}
	return nil
}
