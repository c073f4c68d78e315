package model

// MaterialDetails describes a raw material a buyer wants to source.
type MaterialDetails struct {
	MaterialName      string         `json:"material_name" yaml:"material_name"`
	Category          string         `json:"category" yaml:"category"`
	Specifications    map[string]any `json:"specifications,omitempty" yaml:"specifications"`
	BudgetRange       map[string]any `json:"budget_range,omitempty" yaml:"budget_range"`
	Timeline          map[string]any `json:"timeline,omitempty" yaml:"timeline"`
	PreferredLocation string         `json:"preferred_location,omitempty" yaml:"preferred_location"`
	BusinessType      string         `json:"business_type,omitempty" yaml:"business_type"`
	OrderFrequency    string         `json:"order_frequency,omitempty" yaml:"order_frequency"`
	PaymentPreference string         `json:"payment_preference,omitempty" yaml:"payment_preference"`
}

// SupplierListing is one supplier found on a procurement platform.
type SupplierListing struct {
	Title           string          `json:"title" yaml:"title"`
	Link            string          `json:"link" yaml:"link"`
	Snippet         string          `json:"snippet" yaml:"snippet"`
	SupplierDetails SupplierDetails `json:"supplier_details" yaml:"supplier_details"`
}

// SupplierDetails holds the commercial terms of a supplier listing.
type SupplierDetails struct {
	CompanyName   string `json:"company_name" yaml:"company_name"`
	Location      string `json:"location" yaml:"location"`
	PriceRange    string `json:"price_range" yaml:"price_range"`
	MinimumOrder  string `json:"minimum_order" yaml:"minimum_order"`
	DeliveryTime  string `json:"delivery_time" yaml:"delivery_time"`
	ContactMethod string `json:"contact_method" yaml:"contact_method"`
}

// ProcurementAnalysis groups supplier listings by platform.
type ProcurementAnalysis struct {
	MaterialDetails       MaterialDetails              `json:"material_details" yaml:"material_details"`
	AnalysisTimestamp     string                       `json:"analysis_timestamp" yaml:"analysis_timestamp"`
	DiscoveredPlatforms   []string                     `json:"discovered_platforms" yaml:"discovered_platforms"`
	PlatformSearchResults map[string][]SupplierListing `json:"platform_search_results" yaml:"platform_search_results"`
}
