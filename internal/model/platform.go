package model

// SentinelRank is assigned to platforms the model's analysis left out, so
// they sort last without being dropped.
const SentinelRank = 999

// ProductDetails describes the product a marketplace analysis is run for.
type ProductDetails struct {
	Name           string   `json:"name" yaml:"name"`
	Category       string   `json:"category" yaml:"category"`
	Price          float64  `json:"price" yaml:"price"`
	Features       []string `json:"features" yaml:"features"`
	TargetAudience string   `json:"target_audience" yaml:"target_audience"`
	Brand          string   `json:"brand" yaml:"brand"`
	Description    string   `json:"description" yaml:"description"`
}

// PlatformAnalysis is one ranked marketplace platform.
type PlatformAnalysis struct {
	Name                  string   `json:"name" yaml:"name"`
	Homepage              string   `json:"homepage" yaml:"homepage"`
	Rank                  int      `json:"rank" yaml:"rank"`
	Score                 float64  `json:"score" yaml:"score"`
	Reasoning             string   `json:"reasoning" yaml:"reasoning"`
	GSTTaxes              string   `json:"gst_taxes" yaml:"gst_taxes"`
	OtherCharges          string   `json:"other_charges" yaml:"other_charges"`
	Profit                string   `json:"profit" yaml:"profit"`
	FinalSellingCharge    string   `json:"final_selling_charge" yaml:"final_selling_charge"`
	CommissionFees        string   `json:"commission_fees" yaml:"commission_fees"`
	Advantages            []string `json:"advantages" yaml:"advantages"`
	Disadvantages         []string `json:"disadvantages" yaml:"disadvantages"`
	TargetAudienceMatch   string   `json:"target_audience_match" yaml:"target_audience_match"`
	CategoryFit           string   `json:"category_fit" yaml:"category_fit"`
	CompetitionLevel      string   `json:"competition_level" yaml:"competition_level"`
	BusinessModel         string   `json:"business_model" yaml:"business_model"`
	BulkOrderBenefits     string   `json:"bulk_order_benefits" yaml:"bulk_order_benefits"`
	VerificationStandards string   `json:"verification_standards" yaml:"verification_standards"`
	RecommendedStrategy   string   `json:"recommended_strategy" yaml:"recommended_strategy"`
}

// OverallRecommendations summarizes the analysis across platforms.
type OverallRecommendations struct {
	Top3Platforms           []string `json:"top_3_platforms" yaml:"top_3_platforms"`
	DiversificationStrategy string   `json:"diversification_strategy" yaml:"diversification_strategy"`
	PricingConsiderations   string   `json:"pricing_considerations" yaml:"pricing_considerations"`
	MarketingFocus          string   `json:"marketing_focus" yaml:"marketing_focus"`
	B2BSpecificAdvice       string   `json:"b2b_specific_advice" yaml:"b2b_specific_advice"`
}

// PlatformAnalysisList is the ranked output of a marketplace analysis.
type PlatformAnalysisList struct {
	Platforms              []PlatformAnalysis     `json:"platforms" yaml:"platforms"`
	OverallRecommendations OverallRecommendations `json:"overall_recommendations" yaml:"overall_recommendations"`
}
