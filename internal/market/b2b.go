package market

import (
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

// B2BThreshold is the minimum score for a product to be treated as B2B.
const B2BThreshold = 3

var b2bKeywords = []string{
	"industrial", "commercial", "wholesale", "bulk", "professional", "corporate",
	"business", "office", "manufacturing", "equipment", "machinery", "tools",
	"safety", "medical", "laboratory", "construction", "automotive parts",
	"electronic components", "raw materials", "packaging materials",
	"chemicals", "pharmaceuticals", "textiles", "metals", "plastics",
}

var b2bAudiences = []string{
	"companies", "manufacturers", "distributors", "retailers", "wholesalers",
	"businesses", "enterprises", "industries", "factories", "workshops",
	"hospitals", "clinics", "laboratories", "schools", "offices",
	"construction", "automotive", "mining", "agriculture",
}

var b2bCategories = []string{
	"industrial", "commercial", "office", "manufacturing", "construction",
	"medical equipment", "safety", "laboratory", "automotive parts",
	"electronic components", "chemicals", "machinery", "tools",
}

// B2BScore adds 2 per keyword found anywhere in the product text, 3 per
// business audience named in the target audience, 3 per business category
// in the category and 1 when the price exceeds 5000. Matching is by
// case-insensitive substring.
func B2BScore(p model.ProductDetails) int {
	category := strings.ToLower(p.Category)
	audience := strings.ToLower(p.TargetAudience)
	all := strings.Join([]string{
		strings.ToLower(p.Name),
		category,
		strings.ToLower(p.Description),
		audience,
		strings.ToLower(strings.Join(p.Features, " ")),
	}, " ")

	score := 0
	for _, kw := range b2bKeywords {
		if strings.Contains(all, kw) {
			score += 2
		}
	}
	for _, a := range b2bAudiences {
		if strings.Contains(audience, a) {
			score += 3
		}
	}
	for _, c := range b2bCategories {
		if strings.Contains(category, c) {
			score += 3
		}
	}
	if p.Price > 5000 {
		score++
	}
	return score
}

// IsB2B reports whether the product scores at or above B2BThreshold.
func IsB2B(p model.ProductDetails) bool {
	return B2BScore(p) >= B2BThreshold
}

// CategoryMatches returns the platforms mapped to every category the
// product's category mentions, either as a whole or by any single word.
func CategoryMatches(category string) []string {
	category = strings.ToLower(category)
	var out []string
	for _, m := range categoryPlatforms {
		key := strings.ToLower(m.category)
		if strings.Contains(category, key) || anyWordIn(key, category) {
			out = append(out, m.platforms...)
		}
	}
	return out
}

func anyWordIn(key, text string) bool {
	for _, w := range strings.Fields(key) {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func productType(b2b bool) string {
	if b2b {
		return "B2B (Business-to-Business)"
	}
	return "B2C (Business-to-Consumer)"
}
