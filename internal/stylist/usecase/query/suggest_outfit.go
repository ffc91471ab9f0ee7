package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/stylemind/stylemind-backend/internal/ai"
	"github.com/stylemind/stylemind-backend/internal/stylist"
	userdomain "github.com/stylemind/stylemind-backend/internal/user/domain"
	wardrobedomain "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
	"github.com/stylemind/stylemind-backend/pkg/logger"
)

// styleContextThreshold filters weak preferences out of the AI prompt
const styleContextThreshold = 0.2

// WeatherContext is the optional weather attached to a suggestion request
type WeatherContext struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

// SuggestOutfitQuery represents an outfit request for one user
type SuggestOutfitQuery struct {
	UserID   string
	Occasion string
	Weather  *WeatherContext
}

// SuggestOutfitHandler composes the AI gateway with the deterministic
// rules engine. The gateway is optional; without it every plan comes
// from the rules.
type SuggestOutfitHandler struct {
	items   wardrobedomain.ItemRepository
	users   userdomain.UserRepository
	gateway ai.Gateway
}

// NewSuggestOutfitHandler creates a new suggest outfit handler
func NewSuggestOutfitHandler(items wardrobedomain.ItemRepository, users userdomain.UserRepository, gateway ai.Gateway) *SuggestOutfitHandler {
	return &SuggestOutfitHandler{items: items, users: users, gateway: gateway}
}

// Handle builds an outfit plan. It never returns a user-facing error:
// an empty wardrobe yields an unsuccessful plan and an unreachable
// model falls back to the rules engine with a diagnostic attached.
func (h *SuggestOutfitHandler) Handle(ctx context.Context, q SuggestOutfitQuery) (stylist.Plan, error) {
	if q.UserID == "" {
		return stylist.Plan{}, fmt.Errorf("user id is required")
	}

	items, err := h.items.FindByUser(q.UserID, "")
	if err != nil {
		return stylist.Plan{}, fmt.Errorf("load wardrobe: %w", err)
	}

	plan := h.suggest(ctx, q, items)
	if q.Weather != nil && plan.Success {
		condition := q.Weather.Condition
		if condition == "" {
			condition = "today"
		}
		plan.WeatherNote = "Perfect for " + condition
	}
	return plan, nil
}

func (h *SuggestOutfitHandler) suggest(ctx context.Context, q SuggestOutfitQuery, items []wardrobedomain.Item) stylist.Plan {
	if len(items) == 0 || h.gateway == nil {
		return stylist.SelectOutfit(items, q.Occasion)
	}

	suggestion, err := h.gateway.SuggestOutfit(ctx, h.buildInput(q, items))
	if err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("user_id", q.UserID).Msg("AI outfit suggestion failed, using rules")
		plan := stylist.SelectOutfit(items, q.Occasion)
		plan.Diagnostic = err.Error()
		return plan
	}

	plan := h.planFromSuggestion(q.Occasion, suggestion, items)
	if len(plan.Outfit) == 0 {
		// The model picked nothing that exists in the wardrobe.
		logger.WithContext(ctx).Warn().Str("user_id", q.UserID).Msg("AI suggestion referenced no known items, using rules")
		return stylist.SelectOutfit(items, q.Occasion)
	}
	return plan
}

func (h *SuggestOutfitHandler) buildInput(q SuggestOutfitQuery, items []wardrobedomain.Item) ai.SuggestOutfitInput {
	summaries := make([]ai.ItemSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, ai.ItemSummary{
			ID:          item.ID,
			Category:    item.Category,
			Subcategory: item.Subcategory,
			Colors:      item.Colors,
			Pattern:     item.Pattern,
			Occasions:   item.Occasions,
		})
	}

	in := ai.SuggestOutfitInput{
		Wardrobe: summaries,
		Occasion: q.Occasion,
	}

	if user, err := h.users.FindByID(q.UserID); err == nil {
		in.StyleContext = strings.Join(user.StyleDNA.TopStyles(styleContextThreshold, 3), ", ")
	}
	if q.Weather != nil {
		in.WeatherLine = fmt.Sprintf("Weather: %.0f°C, %s", q.Weather.Temperature, q.Weather.Condition)
	}
	return in
}

// planFromSuggestion maps the model output onto actual wardrobe items.
// Pieces referencing unknown ids are dropped.
func (h *SuggestOutfitHandler) planFromSuggestion(occasion string, suggestion ai.OutfitSuggestion, items []wardrobedomain.Item) stylist.Plan {
	byID := make(map[string]*wardrobedomain.Item, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	plan := stylist.Plan{
		Success:     true,
		Occasion:    occasion,
		OutfitName:  suggestion.OutfitName,
		OccasionFit: suggestion.OccasionFit,
		StylingTips: suggestion.StylingTips,
		Source:      stylist.SourceAI,
	}

	for _, piece := range suggestion.Outfit {
		item, ok := byID[piece.ID]
		if !ok {
			continue
		}
		plan.Outfit = append(plan.Outfit, stylist.Piece{
			ItemID:      item.ID,
			Type:        item.Category,
			Name:        item.Subcategory,
			Color:       item.PrimaryColor(),
			ImageBase64: item.ImageBase64,
		})
	}
	return plan
}
