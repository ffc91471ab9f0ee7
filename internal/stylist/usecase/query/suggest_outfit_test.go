package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stylemind/stylemind-backend/internal/ai"
	"github.com/stylemind/stylemind-backend/internal/stylist"
	userrepo "github.com/stylemind/stylemind-backend/internal/user/repository"
	wardrobedomain "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
	wardroberepo "github.com/stylemind/stylemind-backend/internal/wardrobe/repository"
)

type stubGateway struct {
	suggestion ai.OutfitSuggestion
	err        error
	calls      int
}

func (s *stubGateway) AnalyzeClothing(context.Context, string) (ai.ClothingAnalysis, error) {
	return ai.ClothingAnalysis{}, errors.New("not implemented")
}

func (s *stubGateway) AnalyzeBody(context.Context, string) (ai.BodyAnalysis, error) {
	return ai.BodyAnalysis{}, errors.New("not implemented")
}

func (s *stubGateway) SuggestOutfit(context.Context, ai.SuggestOutfitInput) (ai.OutfitSuggestion, error) {
	s.calls++
	return s.suggestion, s.err
}

func (s *stubGateway) Chat(context.Context, string, []ai.Message, string) (string, error) {
	return "", errors.New("not implemented")
}

func seedWardrobe(t *testing.T, repo wardrobedomain.ItemRepository) []wardrobedomain.Item {
	t.Helper()
	items := []wardrobedomain.Item{
		{ID: "top1", UserID: "u1", Category: wardrobedomain.CategoryTops, Subcategory: "Shirt", Colors: []string{"White"}, Occasions: []string{wardrobedomain.OccasionWork}},
		{ID: "bot1", UserID: "u1", Category: wardrobedomain.CategoryBottoms, Subcategory: "Chinos", Colors: []string{"Beige"}, Occasions: []string{wardrobedomain.OccasionWork}},
		{ID: "shoe1", UserID: "u1", Category: wardrobedomain.CategoryShoes, Subcategory: "Loafers", Colors: []string{"Brown"}},
	}
	for _, item := range items {
		if err := repo.Create(&item); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return items
}

func TestSuggestOutfitEmptyWardrobe(t *testing.T) {
	gw := &stubGateway{}
	h := NewSuggestOutfitHandler(wardroberepo.NewMemoryItemRepository(), userrepo.NewMemoryUserRepository(), gw)

	plan, err := h.Handle(context.Background(), SuggestOutfitQuery{UserID: "u1", Occasion: "work"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if plan.Success {
		t.Error("expected unsuccessful plan for empty wardrobe")
	}
	if plan.Message != stylist.EmptyWardrobeMessage {
		t.Errorf("message = %q", plan.Message)
	}
	if gw.calls != 0 {
		t.Error("gateway must not be called for an empty wardrobe")
	}
}

func TestSuggestOutfitUsesGateway(t *testing.T) {
	items := wardroberepo.NewMemoryItemRepository()
	seedWardrobe(t, items)

	gw := &stubGateway{suggestion: ai.OutfitSuggestion{
		Success:     true,
		OutfitName:  "Boardroom Ready",
		OccasionFit: "Crisp and professional",
		StylingTips: []string{"Tuck in the shirt"},
		Outfit: []ai.SuggestedPiece{
			{ID: "top1", Type: "Tops"},
			{ID: "ghost", Type: "Bottoms"}, // not in the wardrobe, must be dropped
			{ID: "shoe1", Type: "Shoes"},
		},
	}}
	h := NewSuggestOutfitHandler(items, userrepo.NewMemoryUserRepository(), gw)

	plan, err := h.Handle(context.Background(), SuggestOutfitQuery{UserID: "u1", Occasion: "work"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if plan.Source != stylist.SourceAI {
		t.Errorf("source = %q, want %q", plan.Source, stylist.SourceAI)
	}
	if plan.OutfitName != "Boardroom Ready" {
		t.Errorf("outfit name = %q", plan.OutfitName)
	}
	if len(plan.Outfit) != 2 {
		t.Fatalf("expected ghost piece dropped, got %d pieces", len(plan.Outfit))
	}
	if plan.Outfit[0].ItemID != "top1" || plan.Outfit[1].ItemID != "shoe1" {
		t.Errorf("pieces = %+v", plan.Outfit)
	}
	if plan.Outfit[0].Color != "White" {
		t.Errorf("piece attributes must come from the stored item, got color %q", plan.Outfit[0].Color)
	}
}

func TestSuggestOutfitFallsBackOnGatewayError(t *testing.T) {
	items := wardroberepo.NewMemoryItemRepository()
	seedWardrobe(t, items)

	gw := &stubGateway{err: errors.New("model unreachable")}
	h := NewSuggestOutfitHandler(items, userrepo.NewMemoryUserRepository(), gw)

	plan, err := h.Handle(context.Background(), SuggestOutfitQuery{UserID: "u1", Occasion: "work"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if !plan.Success {
		t.Fatal("rules fallback must still produce a plan")
	}
	if plan.Source != stylist.SourceRules {
		t.Errorf("source = %q, want %q", plan.Source, stylist.SourceRules)
	}
	if plan.Diagnostic == "" {
		t.Error("fallback plan must carry the gateway diagnostic")
	}
	if len(plan.Outfit) != 3 {
		t.Errorf("expected full rules outfit, got %d pieces", len(plan.Outfit))
	}
}

func TestSuggestOutfitFallsBackWhenNoKnownItems(t *testing.T) {
	items := wardroberepo.NewMemoryItemRepository()
	seedWardrobe(t, items)

	gw := &stubGateway{suggestion: ai.OutfitSuggestion{
		Success: true,
		Outfit:  []ai.SuggestedPiece{{ID: "nope", Type: "Tops"}},
	}}
	h := NewSuggestOutfitHandler(items, userrepo.NewMemoryUserRepository(), gw)

	plan, err := h.Handle(context.Background(), SuggestOutfitQuery{UserID: "u1", Occasion: "casual"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if plan.Source != stylist.SourceRules {
		t.Errorf("source = %q, want rules fallback", plan.Source)
	}
}

func TestSuggestOutfitWithoutGatewayUsesRules(t *testing.T) {
	items := wardroberepo.NewMemoryItemRepository()
	seedWardrobe(t, items)

	h := NewSuggestOutfitHandler(items, userrepo.NewMemoryUserRepository(), nil)

	plan, err := h.Handle(context.Background(), SuggestOutfitQuery{
		UserID:   "u1",
		Occasion: "work",
		Weather:  &WeatherContext{Temperature: 28, Condition: "Partly Cloudy"},
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if plan.Source != stylist.SourceRules {
		t.Errorf("source = %q, want rules", plan.Source)
	}
	if plan.WeatherNote != "Perfect for Partly Cloudy" {
		t.Errorf("weather note = %q", plan.WeatherNote)
	}
}

func TestAnalyzeGapsHandler(t *testing.T) {
	items := wardroberepo.NewMemoryItemRepository()
	seedWardrobe(t, items)

	h := NewAnalyzeGapsHandler(items)
	report, err := h.Handle(AnalyzeGapsQuery{UserID: "u1"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if report.CategoryCounts[wardrobedomain.CategoryTops] != 1 {
		t.Errorf("tops count = %d", report.CategoryCounts[wardrobedomain.CategoryTops])
	}
	if len(report.Gaps) == 0 {
		t.Error("a three-item wardrobe should have gaps")
	}
}
