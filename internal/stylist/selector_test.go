package stylist

import (
	"fmt"
	"reflect"
	"testing"

	wardrobe "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

func item(id, category string, occasions ...string) wardrobe.Item {
	return wardrobe.Item{
		ID:          id,
		UserID:      "u1",
		Category:    category,
		Subcategory: category + " piece",
		Colors:      []string{"Navy"},
		Occasions:   occasions,
	}
}

func pieceIDs(p Plan) []string {
	ids := make([]string, 0, len(p.Outfit))
	for _, piece := range p.Outfit {
		ids = append(ids, piece.ItemID)
	}
	return ids
}

func TestSelectOutfitEmptyWardrobe(t *testing.T) {
	plan := SelectOutfit(nil, "work")

	if plan.Success {
		t.Fatal("expected unsuccessful plan for empty wardrobe")
	}
	if plan.Message != EmptyWardrobeMessage {
		t.Errorf("message = %q, want %q", plan.Message, EmptyWardrobeMessage)
	}
	if len(plan.Outfit) != 0 {
		t.Errorf("expected no pieces, got %d", len(plan.Outfit))
	}
}

func TestSelectOutfitWorkScenario(t *testing.T) {
	// Top matches Work; the only bottom has no Work/Formal tag and is
	// picked by fallback; shoes are picked with no tag filtering at all.
	items := []wardrobe.Item{
		item("top1", wardrobe.CategoryTops, wardrobe.OccasionWork),
		item("bot1", wardrobe.CategoryBottoms, wardrobe.OccasionCasual),
		item("shoe1", wardrobe.CategoryShoes),
	}

	plan := SelectOutfit(items, "work")

	if !plan.Success {
		t.Fatalf("unexpected failure: %s", plan.Message)
	}
	want := []string{"top1", "bot1", "shoe1"}
	if got := pieceIDs(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("picked %v, want %v", got, want)
	}
}

func TestSelectOutfitPrefersOccasionMatchOverStorageOrder(t *testing.T) {
	items := []wardrobe.Item{
		item("top1", wardrobe.CategoryTops, wardrobe.OccasionCasual),
		item("top2", wardrobe.CategoryTops, wardrobe.OccasionFormal),
		item("bot1", wardrobe.CategoryBottoms, wardrobe.OccasionWork),
	}

	plan := SelectOutfit(items, "work")

	want := []string{"top2", "bot1"}
	if got := pieceIDs(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("picked %v, want %v", got, want)
	}
}

func TestSelectOutfitFallsBackToFirstInStorageOrder(t *testing.T) {
	// Nothing matches the party tags: the first item of each pool wins,
	// not the "closest" match.
	items := []wardrobe.Item{
		item("top1", wardrobe.CategoryTops, wardrobe.OccasionWork),
		item("top2", wardrobe.CategoryTops, wardrobe.OccasionCasual),
	}

	plan := SelectOutfit(items, "party")

	want := []string{"top1"}
	if got := pieceIDs(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("picked %v, want %v", got, want)
	}
}

func TestSelectOutfitDressSuppressesBottoms(t *testing.T) {
	t.Run("dress only", func(t *testing.T) {
		items := []wardrobe.Item{
			item("dress1", wardrobe.CategoryDresses, wardrobe.OccasionParty),
		}

		plan := SelectOutfit(items, "party")

		want := []string{"dress1"}
		if got := pieceIDs(plan); !reflect.DeepEqual(got, want) {
			t.Errorf("picked %v, want %v", got, want)
		}
	})

	t.Run("dress with bottoms available", func(t *testing.T) {
		items := []wardrobe.Item{
			item("dress1", wardrobe.CategoryDresses, wardrobe.OccasionParty),
			item("bot1", wardrobe.CategoryBottoms, wardrobe.OccasionParty),
		}

		plan := SelectOutfit(items, "party")

		for _, piece := range plan.Outfit {
			if piece.Type == wardrobe.CategoryBottoms {
				t.Fatalf("plan pairs a dress with bottoms: %v", pieceIDs(plan))
			}
		}
	})
}

func TestSelectOutfitNeverPairsDressAndBottom(t *testing.T) {
	// Exhaust ordering combinations of a mixed wardrobe; no plan may
	// contain both a dress and a bottom.
	base := []wardrobe.Item{
		item("dress1", wardrobe.CategoryDresses, wardrobe.OccasionDate),
		item("top1", wardrobe.CategoryTops, wardrobe.OccasionCasual),
		item("bot1", wardrobe.CategoryBottoms, wardrobe.OccasionDate),
	}

	for rot := 0; rot < len(base); rot++ {
		rotated := append(append([]wardrobe.Item{}, base[rot:]...), base[:rot]...)
		for _, occasion := range []string{"work", "casual", "date", "party", "unknown"} {
			plan := SelectOutfit(rotated, occasion)

			hasDress, hasBottom := false, false
			for _, piece := range plan.Outfit {
				switch piece.Type {
				case wardrobe.CategoryDresses:
					hasDress = true
				case wardrobe.CategoryBottoms:
					hasBottom = true
				}
			}
			if hasDress && hasBottom {
				t.Errorf("rotation %d occasion %q selected dress and bottom together", rot, occasion)
			}
		}
	}
}

func TestSelectOutfitShoesIgnoreOccasionTags(t *testing.T) {
	// The second pair is tagged for the requested occasion, but shoe
	// selection deliberately skips tag matching: first in order wins.
	items := []wardrobe.Item{
		item("shoe1", wardrobe.CategoryShoes, wardrobe.OccasionCasual),
		item("shoe2", wardrobe.CategoryShoes, wardrobe.OccasionWork, wardrobe.OccasionFormal),
	}

	plan := SelectOutfit(items, "work")

	want := []string{"shoe1"}
	if got := pieceIDs(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("picked %v, want %v", got, want)
	}
}

func TestSelectOutfitNoMatchingCategoriesIsStillSuccess(t *testing.T) {
	items := []wardrobe.Item{
		item("acc1", wardrobe.CategoryAccessories, wardrobe.OccasionParty),
		item("coat1", wardrobe.CategoryOuterwear, wardrobe.OccasionWork),
	}

	plan := SelectOutfit(items, "work")

	if !plan.Success {
		t.Fatal("a populated wardrobe with no selectable pools must still succeed")
	}
	if len(plan.Outfit) != 0 {
		t.Errorf("expected an empty plan, got %v", pieceIDs(plan))
	}
}

func TestSelectOutfitDeterministic(t *testing.T) {
	items := []wardrobe.Item{
		item("top1", wardrobe.CategoryTops, wardrobe.OccasionWork),
		item("top2", wardrobe.CategoryTops, wardrobe.OccasionWork),
		item("bot1", wardrobe.CategoryBottoms, wardrobe.OccasionCasual),
		item("bot2", wardrobe.CategoryBottoms, wardrobe.OccasionFormal),
		item("shoe1", wardrobe.CategoryShoes),
		item("shoe2", wardrobe.CategoryShoes),
	}

	first := SelectOutfit(items, "work")
	for i := 0; i < 10; i++ {
		if got := SelectOutfit(items, "work"); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestTargetTags(t *testing.T) {
	tests := []struct {
		occasion string
		want     []string
	}{
		{"work", []string{wardrobe.OccasionWork, wardrobe.OccasionFormal}},
		{"casual", []string{wardrobe.OccasionCasual}},
		{"date", []string{wardrobe.OccasionDate, wardrobe.OccasionParty}},
		{"party", []string{wardrobe.OccasionParty, wardrobe.OccasionDate}},
		{"hiking", []string{wardrobe.OccasionCasual}},
		{"", []string{wardrobe.OccasionCasual}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("occasion %q", tt.occasion), func(t *testing.T) {
			if got := TargetTags(tt.occasion); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TargetTags(%q) = %v, want %v", tt.occasion, got, tt.want)
			}
		})
	}
}
