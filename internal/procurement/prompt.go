package procurement

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

const discoverPrompt = `You are a procurement and supply chain expert specializing in raw material sourcing for MSME businesses in India.

Based on the material requirements provided, recommend the 5-8 most suitable procurement platforms from the list below.

Material Requirements:
{{material}}

Available Platform Options:
{{sources}}

Material Categories and Typical Sources:
{{categories}}

IMPORTANT:
- Return ONLY a JSON array of platform names.
- Do NOT include any text explanation or reasoning.
- Limit to 8 platforms max.
- Ensure essential B2B platforms: 'IndiaMART', 'TradeIndia', 'Amazon Business' are included if relevant.

Example output:
["IndiaMART", "TradeIndia", "Amazon Business", "Alibaba India", "Udaan"]`

const listingPrompt = `You are an expert B2B procurement advisor.
Given the following raw material and procurement platform, generate structured supplier information.

Material Details:
{{material}}

Procurement Platform: {{platform}}

IMPORTANT INSTRUCTIONS:
- Return ONLY valid JSON (a list of suppliers).
- Each supplier should include:
  - title (string)
  - link (string, example: {{homepage}}/search?q={material_name})
  - snippet (short summary of supplier offering)
  - supplier_details (object with company_name, location, price_range, minimum_order, delivery_time, contact_method)
- Provide 3 suppliers per platform.
- Do NOT include extra commentary.

Example output:
[
  {
    "title": "Cotton Fabric Supplier - ABC Textiles",
    "link": "https://www.indiamart.com/search?q=Cotton+Fabric",
    "snippet": "Leading supplier of cotton fabrics with bulk availability.",
    "supplier_details": {
      "company_name": "ABC Textiles Pvt Ltd",
      "location": "Surat, India",
      "price_range": "₹55 - ₹85 per meter",
      "minimum_order": "500 meters",
      "delivery_time": "7-10 days",
      "contact_method": "Through IndiaMART"
    }
  }
]`

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(data)
}

func linkBase(platform string) string {
	if hp, ok := homepage(platform); ok {
		return hp
	}
	return "#"
}

// DiscoverPrompt asks which procurement platforms suit the material.
func DiscoverPrompt(m model.MaterialDetails) string {
	return strings.NewReplacer(
		"{{material}}", indentJSON(m),
		"{{sources}}", indentJSON(sourceNames()),
		"{{categories}}", indentJSON(materialCategories),
	).Replace(discoverPrompt)
}

// ListingPrompt asks for supplier listings on one platform.
func ListingPrompt(m model.MaterialDetails, platform string) string {
	return strings.NewReplacer(
		"{{material}}", indentJSON(m),
		"{{platform}}", platform,
		"{{homepage}}", linkBase(platform),
	).Replace(listingPrompt)
}

// FallbackListing is the generic listing used when a platform's suppliers
// could not be generated.
func FallbackListing(platform string, m model.MaterialDetails) []model.SupplierListing {
	name := m.MaterialName
	if name == "" {
		name = "Material"
	}
	return []model.SupplierListing{{
		Title:   fmt.Sprintf("%s Suppliers - %s", name, platform),
		Link:    fmt.Sprintf("%s/search?q=%s", linkBase(platform), url.QueryEscape(name)),
		Snippet: fmt.Sprintf("Verified %s suppliers on %s.", name, platform),
		SupplierDetails: model.SupplierDetails{
			CompanyName:   "Multiple suppliers",
			Location:      "Pan India",
			PriceRange:    "Market competitive",
			MinimumOrder:  "As per requirement",
			DeliveryTime:  "7-15 days",
			ContactMethod: "Through " + platform,
		},
	}}
}
