package stylist

import (
	wardrobe "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// Gap is one restocking suggestion
type Gap struct {
	Item     string `json:"item"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

// GapReport pairs the fired suggestions with the raw per-category tally
type GapReport struct {
	Gaps           []Gap          `json:"gaps"`
	CategoryCounts map[string]int `json:"category_counts"`
}

// gapRule is one fixed threshold rule. Rules are independent; any subset
// may fire, always in declaration order.
type gapRule struct {
	category  string
	threshold int
	gap       Gap
}

var gapRules = []gapRule{
	{wardrobe.CategoryShoes, 2, Gap{Item: "White Sneakers", Reason: "Versatile, matches most outfits", Priority: "high"}},
	{wardrobe.CategoryOuterwear, 1, Gap{Item: "Light Jacket", Reason: "Great for layering", Priority: "medium"}},
	{wardrobe.CategoryAccessories, 2, Gap{Item: "Statement Bag", Reason: "Elevates any outfit", Priority: "low"}},
	{wardrobe.CategoryBottoms, 3, Gap{Item: "Versatile Chinos", Reason: "Works for work and casual", Priority: "medium"}},
}

// AnalyzeGaps tallies the wardrobe per category and applies the fixed
// threshold rules. The six fixed categories are always present in the
// counts; unrecognized categories are tallied too but trigger nothing.
func AnalyzeGaps(items []wardrobe.Item) GapReport {
	counts := make(map[string]int, 8)
	for _, c := range wardrobe.Categories() {
		counts[c] = 0
	}
	for _, item := range items {
		counts[item.Category]++
	}

	gaps := make([]Gap, 0, len(gapRules))
	for _, rule := range gapRules {
		if counts[rule.category] < rule.threshold {
			gaps = append(gaps, rule.gap)
		}
	}

	return GapReport{Gaps: gaps, CategoryCounts: counts}
}
