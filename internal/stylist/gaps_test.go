package stylist

import (
	"reflect"
	"testing"

	wardrobe "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

func wardrobeOf(categories ...string) []wardrobe.Item {
	items := make([]wardrobe.Item, 0, len(categories))
	for i, c := range categories {
		items = append(items, wardrobe.Item{
			ID:       string(rune('a' + i)),
			UserID:   "u1",
			Category: c,
		})
	}
	return items
}

func gapItems(report GapReport) []string {
	names := make([]string, 0, len(report.Gaps))
	for _, g := range report.Gaps {
		names = append(names, g.Item)
	}
	return names
}

func TestAnalyzeGapsEmptyWardrobeFiresAllRulesInOrder(t *testing.T) {
	report := AnalyzeGaps(nil)

	want := []string{"White Sneakers", "Light Jacket", "Statement Bag", "Versatile Chinos"}
	if got := gapItems(report); !reflect.DeepEqual(got, want) {
		t.Errorf("gaps = %v, want %v", got, want)
	}

	for _, c := range wardrobe.Categories() {
		if n, ok := report.CategoryCounts[c]; !ok || n != 0 {
			t.Errorf("count for %s = %d (present=%v), want 0", c, n, ok)
		}
	}
}

func TestAnalyzeGapsSatisfiedWardrobe(t *testing.T) {
	items := wardrobeOf(
		wardrobe.CategoryShoes, wardrobe.CategoryShoes,
		wardrobe.CategoryOuterwear,
		wardrobe.CategoryAccessories, wardrobe.CategoryAccessories,
		wardrobe.CategoryBottoms, wardrobe.CategoryBottoms, wardrobe.CategoryBottoms,
	)

	report := AnalyzeGaps(items)

	if len(report.Gaps) != 0 {
		t.Errorf("expected no gaps, got %v", gapItems(report))
	}
	if report.CategoryCounts[wardrobe.CategoryBottoms] != 3 {
		t.Errorf("bottoms count = %d, want 3", report.CategoryCounts[wardrobe.CategoryBottoms])
	}
}

func TestAnalyzeGapsPartialThresholds(t *testing.T) {
	// One pair of shoes is below the threshold of two; one jacket meets
	// its threshold of one.
	items := wardrobeOf(
		wardrobe.CategoryShoes,
		wardrobe.CategoryOuterwear,
		wardrobe.CategoryAccessories, wardrobe.CategoryAccessories,
		wardrobe.CategoryBottoms, wardrobe.CategoryBottoms, wardrobe.CategoryBottoms,
	)

	report := AnalyzeGaps(items)

	want := []string{"White Sneakers"}
	if got := gapItems(report); !reflect.DeepEqual(got, want) {
		t.Errorf("gaps = %v, want %v", got, want)
	}
	if report.Gaps[0].Priority != "high" {
		t.Errorf("priority = %q, want high", report.Gaps[0].Priority)
	}
}

func TestAnalyzeGapsCountsUnrecognizedCategories(t *testing.T) {
	items := wardrobeOf("Swimwear", "Swimwear", wardrobe.CategoryTops)

	report := AnalyzeGaps(items)

	if report.CategoryCounts["Swimwear"] != 2 {
		t.Errorf("Swimwear count = %d, want 2", report.CategoryCounts["Swimwear"])
	}
	if report.CategoryCounts[wardrobe.CategoryTops] != 1 {
		t.Errorf("Tops count = %d, want 1", report.CategoryCounts[wardrobe.CategoryTops])
	}
	// Unrecognized categories never satisfy a rule.
	if got := gapItems(report); len(got) != 4 {
		t.Errorf("expected all four gaps, got %v", got)
	}
}
