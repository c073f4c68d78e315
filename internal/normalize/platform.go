package normalize

import (
	"github.com/sells-group/insight-cli/internal/extract"
	"github.com/sells-group/insight-cli/internal/model"
)

// PlatformAnalysis reads the per-platform analysis map and the overall
// recommendations. Map entries are keyed by the platform name exactly as
// the model wrote it.
func PlatformAnalysis(v extract.Value, rep *model.Report) (map[string]model.PlatformAnalysis, model.OverallRecommendations) {
	f := newFields(v, "", rep)

	byName := map[string]model.PlatformAnalysis{}
	analysis := f.sub("platform_analysis")
	for _, name := range analysis.obj.Keys() {
		byName[name] = platform(name, analysis.sub(name))
	}
	return byName, overall(f.sub("overall_recommendations"))
}

func platform(name string, f fields) model.PlatformAnalysis {
	profit := Unknown
	switch {
	case f.has("profit_analysis"):
		profit = f.str("profit_analysis", Unknown)
	case f.has("profit"):
		profit = f.str("profit", Unknown)
	}
	return model.PlatformAnalysis{
		Name:                  name,
		Homepage:              f.str("homepage", ""),
		Rank:                  f.integer("rank", model.SentinelRank),
		Score:                 f.num("score", 0),
		Reasoning:             f.str("reasoning", ""),
		GSTTaxes:              f.str("gst_taxes", Unknown),
		OtherCharges:          f.str("other_charges", Unknown),
		Profit:                profit,
		FinalSellingCharge:    f.str("final_selling_charge", Unknown),
		CommissionFees:        f.str("commission_fees", Unknown),
		Advantages:            f.list("advantages"),
		Disadvantages:         f.list("disadvantages"),
		TargetAudienceMatch:   f.str("target_audience_match", Unknown),
		CategoryFit:           f.str("category_fit", Unknown),
		CompetitionLevel:      f.str("competition_level", Unknown),
		BusinessModel:         f.str("business_model", Unknown),
		BulkOrderBenefits:     f.str("bulk_order_benefits", ""),
		VerificationStandards: f.str("verification_standards", ""),
		RecommendedStrategy:   f.str("recommended_strategy", ""),
	}
}

func overall(f fields) model.OverallRecommendations {
	return model.OverallRecommendations{
		Top3Platforms:           f.list("top_3_platforms"),
		DiversificationStrategy: f.str("diversification_strategy", ""),
		PricingConsiderations:   f.str("pricing_considerations", ""),
		MarketingFocus:          f.str("marketing_focus", ""),
		B2BSpecificAdvice:       f.str("b2b_specific_advice", ""),
	}
}

// Names reads a list of entity names, either a bare array or an object
// whose first array-valued field holds the names. Blank and repeated names
// are dropped; order is kept.
func Names(v extract.Value) []string {
	f := newFields(extract.EmptyObject(), "", nil)
	switch v.Kind() {
	case extract.KindArray:
		f.obj = extract.Object(extract.Field{Key: "names", Value: v})
	case extract.KindObject:
		for _, k := range v.Keys() {
			if item, _ := v.Get(k); item.Kind() == extract.KindArray {
				f.obj = extract.Object(extract.Field{Key: "names", Value: item})
				break
			}
		}
	}

	seen := map[string]bool{}
	out := []string{}
	for _, name := range f.list("names") {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
