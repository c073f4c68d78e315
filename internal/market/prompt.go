package market

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

const suggestPrompt = `You are an e-commerce platform expert for India. Based on the product details below, recommend the most suitable Indian e-commerce platforms.

Product Details:
- Name: {{name}}
- Category: {{category}}
- Product Type: {{type}}
- Target Audience: {{audience}}
- Price: ₹{{price}}

Available platforms to choose from:
{{catalog}}

Consider these factors:
- Product category fit
- Target audience alignment
- Business model (B2B vs B2C)
- Market presence in India
- Commission structure
- Platform specialization

Return ONLY a JSON array of the top 8-10 most suitable platform names from the available list above.
Example format: ["Amazon", "Flipkart", "IndiaMART", "Myntra"]`

const analysisSystem = "You are an expert e-commerce analyst. Always respond with valid JSON only, no additional text or explanations."

const analysisPrompt = `You are an e-commerce platform analysis expert specializing in both B2C and B2B platforms in India.

Product Details:
{{product}}

Available Platforms:
{{platforms}}

Product Type: {{type}}

B2B Platform Specializations:
- IndiaMART: India's largest B2B marketplace, 2-5% commission, verified suppliers, trade credit facilities
- Government e-Marketplace (GeM): Government procurement platform, transparent pricing, quality assurance, tender opportunities
- ONDC Network: Open network supporting both B2B & B2C, 2-3% commission, direct customer relationships, government backing
- Amazon Business: B2B marketplace with bulk pricing, business credit lines, GST invoicing
- TradeIndia: B2B platform focusing on exports/imports, trade finance, 1-3% commission
- Alibaba India: Global B2B sourcing, international suppliers, trade assurance

B2C Platform Specializations:
- Amazon/Flipkart: Mass market reach, 8-15% commission, high competition
- Myntra/Ajio: Fashion focus, 15-25% commission
- Nykaa: Beauty & personal care, 10-20% commission
- ONDC Network: Supporting local businesses, 2-3% commission

Calculations:
1. GST as (GST% x Product Price). Show percentage and rupee value.
2. Commission by platform and product type:
   - IndiaMART: 2-5%
   - Government e-Marketplace (GeM): 0-1%
   - ONDC Network: 2-3%
   - Amazon Business: 5-12%
   - TradeIndia: 1-3%
   - Amazon (B2C): 8-15%
   - Flipkart: 10-20%
3. Include shipping charges and other fees.
4. Final Selling Charge = Commission + GST + Shipping + Other Fees.
5. Profit = Selling Price - Final Selling Charge, with Net Profit Margin %.

For B2B products, emphasize bulk order capabilities, trade credit facilities, quality certifications, supplier verification and export opportunities.

Return JSON only:
{
    "platform_analysis": {
        "platform_name": {
            "rank": "number",
            "score": "number (0-100)",
            "reasoning": "string",
            "advantages": ["list"],
            "disadvantages": ["list"],
            "target_audience_match": "Excellent/Good/Fair/Poor",
            "category_fit": "Excellent/Good/Fair/Poor",
            "competition_level": "Low/Medium/High",
            "business_model": "B2B/B2C/Hybrid",
            "gst_taxes": "string (GST percentage and cost impact)",
            "commission_fees": "string (platform commission and amount)",
            "other_charges": "string (listing, shipping, payment gateway fees)",
            "final_selling_charge": "string (total cost breakdown)",
            "profit_analysis": "string (profit amount and margin percentage)",
            "bulk_order_benefits": "string (for B2B platforms)",
            "verification_standards": "string (quality checks, certifications)",
            "recommended_strategy": "string"
        }
    },
    "overall_recommendations": {
        "top_3_platforms": ["list"],
        "diversification_strategy": "string",
        "pricing_considerations": "string",
        "marketing_focus": "string",
        "b2b_specific_advice": "string (if B2B product)"
    }
}`

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(data)
}

// SuggestPrompt asks the model which catalog platforms fit the product.
func SuggestPrompt(p model.ProductDetails, b2b bool) string {
	return strings.NewReplacer(
		"{{name}}", p.Name,
		"{{category}}", p.Category,
		"{{type}}", productType(b2b),
		"{{audience}}", p.TargetAudience,
		"{{price}}", strconv.FormatFloat(p.Price, 'f', -1, 64),
		"{{catalog}}", indentJSON(Names()),
	).Replace(suggestPrompt)
}

// AnalysisPrompt asks the model to rank the discovered platforms.
func AnalysisPrompt(p model.ProductDetails, platforms []string, b2b bool) string {
	return strings.NewReplacer(
		"{{product}}", indentJSON(p),
		"{{platforms}}", indentJSON(platforms),
		"{{type}}", productType(b2b),
	).Replace(analysisPrompt)
}
