package normalize

import (
	"github.com/sells-group/insight-cli/internal/extract"
	"github.com/sells-group/insight-cli/internal/model"
)

// CreditScore builds a credit score analysis from a decoded response.
func CreditScore(v extract.Value, rep *model.Report) model.CreditScoreAnalysis {
	f := newFields(v, "", rep)
	breakdown := f.sub("factor_breakdown")
	details := f.sub("detailed_analysis")
	recs := f.sub("recommendations")

	return model.CreditScoreAnalysis{
		FinalWeightedCreditScore: f.num("final_weighted_credit_score", 0),
		ScoreCategory:            f.str("score_category", Unknown),
		FactorBreakdown: model.FactorBreakdown{
			PaymentCompletionRate:  factor(breakdown.sub(model.FactorPaymentCompletionRate)),
			PaidToPendingRatio:     factor(breakdown.sub(model.FactorPaidToPendingRatio)),
			TaxCompliance:          factor(breakdown.sub(model.FactorTaxCompliance)),
			ExtraChargesManagement: factor(breakdown.sub(model.FactorExtraChargesManagement)),
		},
		DetailedAnalysis: model.DetailedAnalysis{
			Strengths:               details.list("strengths"),
			Weaknesses:              details.list("weaknesses"),
			RiskAssessment:          details.str("risk_assessment", Unknown),
			CreditworthinessSummary: details.list("creditworthiness_summary"),
		},
		Recommendations: model.Recommendations{
			ImmediateActions:     recs.list("immediate_actions"),
			LongTermImprovements: recs.list("long_term_improvements"),
			PriorityFocusAreas:   recs.list("priority_focus_areas"),
		},
	}
}

func factor(f fields) model.Factor {
	return model.Factor{
		ActualValue:      f.num("actual_value", 0),
		IndividualScore:  f.num("individual_score", 0),
		WeightedScore:    f.num("weighted_score", 0),
		WeightPercentage: f.integer("weight_percentage", 0),
		Comment:          f.str("comment", NotAvailable),
	}
}

// Ledger reads a ledger summary supplied as JSON input to the credit
// command. Range checks are left to LedgerSummary.Validate and the
// pending+paid=total rule to the reconciler.
func Ledger(v extract.Value, rep *model.Report) model.LedgerSummary {
	f := newFields(v, "", rep)
	return model.LedgerSummary{
		NoOfInvoices:          f.integer("no_of_invoices", 0),
		TotalAmount:           f.num("total_amount", 0),
		TotalAmountPending:    f.num("total_amount_pending", 0),
		TotalAmountPaid:       f.num("total_amount_paid", 0),
		Tax:                   f.num("tax", 0),
		ExtraCharges:          f.num("extra_charges", 0),
		PaymentCompletionRate: f.num("payment_completion_rate", 0),
		PaidToPendingRatio:    f.num("paid_to_pending_ratio", 0),
	}
}
