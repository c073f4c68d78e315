package market

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/insight-cli/internal/llm"
	"github.com/sells-group/insight-cli/internal/llm/mocks"
	"github.com/sells-group/insight-cli/internal/model"
	"github.com/sells-group/insight-cli/internal/pipeline"
	"github.com/sells-group/insight-cli/internal/resilience"
)

var shirt = model.ProductDetails{
	Name:           "Men's Slim Fit Cotton Shirt",
	Category:       "Apparel / Fashion",
	Price:          999,
	Features:       []string{"Breathable fabric", "Wrinkle-free", "Available in 5 colors"},
	TargetAudience: "Young professionals",
	Brand:          "Local Brand",
	Description:    "Comfortable and stylish cotton shirt",
}

var helmet = model.ProductDetails{
	Name:           "Industrial Safety Helmets - ABS Material",
	Category:       "Safety Equipment / Industrial Supplies",
	Price:          450,
	Features:       []string{"ISI marked compliance", "Impact resistant ABS shell"},
	TargetAudience: "Construction companies, Manufacturing units, Mining operations",
	Brand:          "SafeGuard Pro",
	Description:    "Industrial safety helmets for workplace protection",
}

func op(name string) any {
	return mock.MatchedBy(func(req llm.Request) bool { return req.Operation == name })
}

func newService(gen llm.Generator) *Service {
	return New(gen, pipeline.New(pipeline.Config{}), Options{Retry: resilience.Policy{MaxRetries: 0}})
}

func TestCatalog(t *testing.T) {
	assert.Len(t, Catalog, 24)
	hp := Homepages()
	assert.Len(t, hp, 24)
	assert.Equal(t, "https://gem.gov.in", hp[GeM])

	for _, m := range categoryPlatforms {
		for _, name := range m.platforms {
			assert.Contains(t, hp, name, "category %s", m.category)
		}
	}
}

func TestB2BScore(t *testing.T) {
	assert.Equal(t, 2, B2BScore(shirt))
	assert.False(t, IsB2B(shirt))
	assert.True(t, IsB2B(helmet))
}

func TestB2BScore_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		product model.ProductDetails
		want    int
	}{
		{"empty", model.ProductDetails{}, 0},
		{"price only", model.ProductDetails{Price: 6000}, 1},
		{"price at limit", model.ProductDetails{Price: 5000}, 0},
		{"audience only", model.ProductDetails{TargetAudience: "Schools"}, 3},
		{"category tools", model.ProductDetails{Category: "Tools"}, 5},
		{"bulk keyword", model.ProductDetails{Description: "sold in BULK"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, B2BScore(tt.product))
			assert.Equal(t, tt.want >= B2BThreshold, IsB2B(tt.product))
		})
	}
}

func TestCategoryMatches(t *testing.T) {
	assert.Equal(t, []string{"Myntra", "Ajio", Amazon, Flipkart, "Meesho"}, CategoryMatches("Apparel / Fashion"))
	assert.Empty(t, CategoryMatches("Garden"))
	assert.Contains(t, CategoryMatches("Kids toys"), "FirstCry")
}

func TestSuggestPrompt(t *testing.T) {
	p := SuggestPrompt(helmet, true)
	assert.Contains(t, p, "Price: ₹450")
	assert.Contains(t, p, "B2B (Business-to-Business)")
	assert.Contains(t, p, `"DHgate"`)
	assert.NotContains(t, p, "{{")
}

func TestDiscover_B2C(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, op("market_suggest")).
		Return(`Sure! ["Nykaa", "Amazon", "Etsy"]`, nil).Once()

	got := newService(gen).Discover(context.Background(), shirt)

	assert.Equal(t, []string{"Myntra", "Ajio", Amazon, Flipkart, "Meesho", "Nykaa", ONDC}, got)
}

func TestDiscover_SuggestionFailureKeepsEssentials(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, op("market_suggest")).Return("", assert.AnError).Once()

	got := newService(gen).Discover(context.Background(), model.ProductDetails{
		Name: "Lathe", Category: "Machinery", TargetAudience: "factories",
	})

	assert.Equal(t, essentialB2B, got)
}

func TestAnalyze(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, op("market_suggest")).Return(`[]`, nil).Once()
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(req llm.Request) bool {
		return req.Operation == "market_analysis" && req.MaxTokens == analysisMaxTokens &&
			strings.Contains(req.Prompt, `"Myntra"`)
	})).Return("```json\n{\"platform_analysis\": {\n"+
		"  \"Amazon\": {\"rank\": 2, \"score\": 80, \"profit\": \"120\"},\n"+
		"  \"Myntra\": {\"rank\": 1, \"score\": 91.5},\n"+
		"  \"Flipkart\": {\"rank\": 2, \"score\": 75}\n"+
		"}, \"overall_recommendations\": {\"top_3_platforms\": [\"Myntra\"]}}\n```", nil).Once()

	res, err := newService(gen).Analyze(context.Background(), shirt)

	require.NoError(t, err)
	assert.False(t, res.B2B)
	var names []string
	for _, p := range res.Platforms {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Myntra", Amazon, Flipkart, "Ajio", "Meesho", ONDC}, names)
	assert.Equal(t, "https://www.myntra.com", res.Platforms[0].Homepage)
	assert.Equal(t, "120", res.Platforms[1].Profit)
	for _, p := range res.Platforms[3:] {
		assert.Equal(t, model.SentinelRank, p.Rank)
		assert.NotEmpty(t, p.Homepage)
	}
	assert.Equal(t, []string{"Myntra"}, res.OverallRecommendations.Top3Platforms)
	assert.False(t, res.Report.Has(model.IssueUpstreamExhausted))
}

func TestAnalyze_ExhaustedAnalysisIsRecorded(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, op("market_suggest")).Return(`["Nykaa"]`, nil).Once()
	gen.On("Generate", mock.Anything, op("market_analysis")).Return("", assert.AnError).Once()

	res, err := newService(gen).Analyze(context.Background(), shirt)

	require.NoError(t, err)
	require.NotEmpty(t, res.Platforms)
	for _, p := range res.Platforms {
		assert.Equal(t, model.SentinelRank, p.Rank)
		assert.Equal(t, "Unknown", p.BusinessModel)
	}
	assert.True(t, res.Report.Has(model.IssueUpstreamExhausted))
	assert.True(t, res.Report.Unusable())
}

func TestAnalyze_RequiresProduct(t *testing.T) {
	_, err := newService(mocks.NewMockGenerator(t)).Analyze(context.Background(), model.ProductDetails{})
	assert.Error(t, err)
}
