package credit

import (
	"encoding/json"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

const scorePrompt = `You are a financial credit analysis expert. Based on the provided financial data, calculate a weighted CIBIL-style credit score from 0 to 100.

Use these weightings for calculation:
- Payment Completion Rate: 40% weight (most important)
- Paid-to-Pending Ratio: 30% weight (second most important)
- Tax Compliance: 15% weight (moderate importance)
- Extra Charges Management: 15% weight (moderate importance)

Input Data:
{{ledger}}

Scoring Guidelines:
- Payment Completion Rate: 90-100% = Excellent (90-100 points), 70-89% = Good (70-89 points), 50-69% = Fair (50-69 points), <50% = Poor (0-49 points)
- Paid-to-Pending Ratio: >4.0 = Excellent (90-100 points), 2.0-4.0 = Good (70-89 points), 1.0-2.0 = Fair (50-69 points), <1.0 = Poor (0-49 points)
- Tax Compliance: Lower tax percentage of total = Better score
- Extra Charges Management: Lower extra charges percentage = Better score

Return only this JSON object and nothing else:
{
    "final_weighted_credit_score": "number (0-100)",
    "score_category": "string (Excellent/Good/Fair/Poor)",
    "factor_breakdown": {
        "payment_completion_rate": {"actual_value": "number", "individual_score": "number (0-100)", "weighted_score": "number", "weight_percentage": 40, "comment": "string"},
        "paid_to_pending_ratio": {"actual_value": "number", "individual_score": "number (0-100)", "weighted_score": "number", "weight_percentage": 30, "comment": "string"},
        "tax_compliance": {"actual_value": "number (tax percentage of total)", "individual_score": "number (0-100)", "weighted_score": "number", "weight_percentage": 15, "comment": "string"},
        "extra_charges_management": {"actual_value": "number (extra charges percentage of total)", "individual_score": "number (0-100)", "weighted_score": "number", "weight_percentage": 15, "comment": "string"}
    },
    "detailed_analysis": {
        "strengths": ["positive aspects"],
        "weaknesses": ["areas needing improvement"],
        "risk_assessment": "string (Low/Medium/High risk)",
        "creditworthiness_summary": ["2-4 analytical statements"]
    },
    "recommendations": {
        "immediate_actions": ["string"],
        "long_term_improvements": ["string"],
        "priority_focus_areas": ["string"]
    }
}

The creditworthiness_summary should cover cash flow stability and payment patterns, pending amount management, cost optimization (tax and extra charges) and overall financial health.`

// Prompt renders the scoring prompt for a ledger.
func Prompt(ledger model.LedgerSummary) string {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		data = []byte("{}")
	}
	return strings.Replace(scorePrompt, "{{ledger}}", string(data), 1)
}
