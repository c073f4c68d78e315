package model

import (
	"slices"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	businessTypes   = []string{"retail", "service", "manufacturing", "e-commerce", "saas", "consulting", "restaurant", "healthcare", "education", "other"}
	policyLanguages = []string{"en", "hi", "es", "fr"}
	policyAudiences = []string{"B2B", "B2C", "Both"}
)

// PolicyDocument is one generated legal policy.
type PolicyDocument struct {
	PolicyType string `json:"policy_type" yaml:"policy_type"`
	Content    string `json:"content" yaml:"content"`
}

// BusinessDetails describes the business a policy set is generated for.
type BusinessDetails struct {
	BusinessName         string `json:"business_name" yaml:"business_name"`
	BusinessType         string `json:"business_type" yaml:"business_type"`
	Industry             string `json:"industry" yaml:"industry"`
	LocationCountry      string `json:"location_country" yaml:"location_country"`
	LocationState        string `json:"location_state,omitempty" yaml:"location_state"`
	LocationCity         string `json:"location_city,omitempty" yaml:"location_city"`
	WebsiteURL           string `json:"website_url,omitempty" yaml:"website_url"`
	HasOnlinePresence    bool   `json:"has_online_presence" yaml:"has_online_presence"`
	HasPhysicalStore     bool   `json:"has_physical_store" yaml:"has_physical_store"`
	CollectsPersonalData bool   `json:"collects_personal_data" yaml:"collects_personal_data"`
	ProcessesPayments    bool   `json:"processes_payments" yaml:"processes_payments"`
	UsesCookies          bool   `json:"uses_cookies" yaml:"uses_cookies"`
	HasNewsletter        bool   `json:"has_newsletter" yaml:"has_newsletter"`
	TargetAudience       string `json:"target_audience" yaml:"target_audience"`
	DataRetentionPeriod  int    `json:"data_retention_period" yaml:"data_retention_period"`
}

// PolicyRequest asks for one document per policy type.
type PolicyRequest struct {
	BusinessDetails  BusinessDetails `json:"business_details" yaml:"business_details"`
	PolicyTypes      []string        `json:"policy_types" yaml:"policy_types"`
	Language         string          `json:"language" yaml:"language"`
	StrictCompliance bool            `json:"strict_compliance" yaml:"strict_compliance"`
}

// PolicySet is the result of generating every requested policy type.
type PolicySet struct {
	ComplianceRegions []string                  `json:"compliance_regions" yaml:"compliance_regions"`
	StrictCompliance  bool                      `json:"strict_compliance" yaml:"strict_compliance"`
	GeneratedPolicies map[string]PolicyDocument `json:"generated_policies" yaml:"generated_policies"`
	Timestamp         string                    `json:"timestamp" yaml:"timestamp"`
	APIModel          string                    `json:"api_model" yaml:"api_model"`
}

// ApplyDefaults fills optional fields: language en, audience B2C and a
// 365 day retention period.
func (r *PolicyRequest) ApplyDefaults() {
	if r.Language == "" {
		r.Language = "en"
	}
	if r.BusinessDetails.TargetAudience == "" {
		r.BusinessDetails.TargetAudience = "B2C"
	}
	if r.BusinessDetails.DataRetentionPeriod == 0 {
		r.BusinessDetails.DataRetentionPeriod = 365
	}
}

// Validate checks the request after defaults are applied.
func (r PolicyRequest) Validate() error {
	b := r.BusinessDetails
	switch {
	case strings.TrimSpace(b.BusinessName) == "" || len(b.BusinessName) > 255:
		return eris.New("policy: business_name must be 1-255 characters")
	case !slices.Contains(businessTypes, b.BusinessType):
		return eris.Errorf("policy: unsupported business_type %q", b.BusinessType)
	case strings.TrimSpace(b.Industry) == "" || len(b.Industry) > 100:
		return eris.New("policy: industry must be 1-100 characters")
	case strings.TrimSpace(b.LocationCountry) == "" || len(b.LocationCountry) > 100:
		return eris.New("policy: location_country must be 1-100 characters")
	case !slices.Contains(policyAudiences, b.TargetAudience):
		return eris.Errorf("policy: unsupported target_audience %q", b.TargetAudience)
	case b.DataRetentionPeriod < 30 || b.DataRetentionPeriod > 3650:
		return eris.New("policy: data_retention_period must be within [30, 3650] days")
	case len(r.PolicyTypes) == 0:
		return eris.New("policy: at least one policy type is required")
	case !slices.Contains(policyLanguages, r.Language):
		return eris.Errorf("policy: unsupported language %q", r.Language)
	}
	for _, t := range r.PolicyTypes {
		if strings.TrimSpace(t) == "" {
			return eris.New("policy: blank policy type")
		}
	}
	return nil
}
