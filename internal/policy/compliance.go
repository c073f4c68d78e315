package policy

import (
	"slices"
	"strings"
)

// Compliance frameworks.
const (
	IndianITAct                 = "Indian_IT_Act"
	IndianConsumerProtectionAct = "Indian_Consumer_Protection_Act"
	GDPR                        = "GDPR"
	CCPA                        = "CCPA"
	COPPA                       = "COPPA"
	USFTC                       = "US_FTC"
	PIPEDA                      = "PIPEDA"
	UKGDPR                      = "UK_GDPR"
	UKDPA                       = "UK_DPA"
	AustralianPrivacyAct        = "Australian_Privacy_Act"
	InternationalBestPractices  = "International_Best_Practices"
)

var euCountries = []string{
	"germany", "france", "italy", "spain", "netherlands", "belgium", "austria", "poland",
	"czech republic", "hungary", "romania", "bulgaria", "croatia", "slovakia", "slovenia",
	"estonia", "latvia", "lithuania", "luxembourg", "malta", "cyprus", "denmark", "sweden",
	"finland", "ireland", "portugal", "greece",
}

var regionsByCountry = []struct {
	countries []string
	regions   []string
}{
	{[]string{"india", "in"}, []string{IndianITAct, IndianConsumerProtectionAct}},
	{euCountries, []string{GDPR}},
	{[]string{"united states", "usa", "us"}, []string{CCPA, COPPA, USFTC}},
	{[]string{"canada", "ca"}, []string{PIPEDA}},
	{[]string{"united kingdom", "uk", "gb"}, []string{UKGDPR, UKDPA}},
	{[]string{"australia", "au"}, []string{AustralianPrivacyAct}},
}

// ComplianceRegions maps a country name or code to the frameworks a policy
// must follow. Unknown countries get International_Best_Practices.
func ComplianceRegions(country string) []string {
	c := strings.ToLower(strings.TrimSpace(country))
	var out []string
	for _, r := range regionsByCountry {
		if slices.Contains(r.countries, c) {
			out = append(out, r.regions...)
		}
	}
	if len(out) == 0 {
		out = []string{InternationalBestPractices}
	}
	return out
}
