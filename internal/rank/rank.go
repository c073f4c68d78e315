// Package rank merges a discovered list of entities with a per-entity
// analysis and orders the result.
package rank

import (
	"cmp"
	"slices"

	"github.com/sells-group/insight-cli/internal/model"
)

// Aggregate returns one entry per discovered name, in ascending rank order.
// Entries come from analysis by exact name match; names the analysis left
// out are built by fallback. Equal ranks keep discovery order, so the
// output length always equals len(names).
func Aggregate[T any](names []string, analysis map[string]T, fallback func(name string) T, rankOf func(T) int) []T {
	out := make([]T, 0, len(names))
	for _, name := range names {
		if entry, ok := analysis[name]; ok {
			out = append(out, entry)
			continue
		}
		out = append(out, fallback(name))
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(rankOf(a), rankOf(b))
	})
	return out
}

// MissingPlatform is the placeholder for a platform the analysis did not
// cover: sentinel rank, zero score, every descriptive field defaulted.
func MissingPlatform(name string) model.PlatformAnalysis {
	return model.PlatformAnalysis{
		Name:                name,
		Homepage:            "",
		Rank:                model.SentinelRank,
		Score:               0,
		GSTTaxes:            "Unknown",
		OtherCharges:        "Unknown",
		Profit:              "Unknown",
		FinalSellingCharge:  "Unknown",
		CommissionFees:      "Unknown",
		Advantages:          []string{},
		Disadvantages:       []string{},
		TargetAudienceMatch: "Unknown",
		CategoryFit:         "Unknown",
		CompetitionLevel:    "Unknown",
		BusinessModel:       "Unknown",
	}
}

// Platforms ranks discovered platforms. homepages supplies static catalog
// metadata; an analysis entry that already carries a homepage keeps it.
func Platforms(names []string, analysis map[string]model.PlatformAnalysis, homepages map[string]string) []model.PlatformAnalysis {
	ranked := Aggregate(names, analysis, MissingPlatform, func(p model.PlatformAnalysis) int { return p.Rank })
	for i := range ranked {
		if ranked[i].Homepage == "" {
			ranked[i].Homepage = homepages[ranked[i].Name]
		}
	}
	return ranked
}
