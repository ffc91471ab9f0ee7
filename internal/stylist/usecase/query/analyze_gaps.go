package query

import (
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/stylist"
	wardrobedomain "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// AnalyzeGapsQuery represents a wardrobe gap analysis request
type AnalyzeGapsQuery struct {
	UserID string
}

// AnalyzeGapsHandler handles gap analysis over a user's wardrobe
type AnalyzeGapsHandler struct {
	items wardrobedomain.ItemRepository
}

// NewAnalyzeGapsHandler creates a new analyze gaps handler
func NewAnalyzeGapsHandler(items wardrobedomain.ItemRepository) *AnalyzeGapsHandler {
	return &AnalyzeGapsHandler{items: items}
}

// Handle executes the query. Unknown users get the empty-wardrobe
// report, with every rule fired.
func (h *AnalyzeGapsHandler) Handle(q AnalyzeGapsQuery) (stylist.GapReport, error) {
	if q.UserID == "" {
		return stylist.GapReport{}, fmt.Errorf("user id is required")
	}

	items, err := h.items.FindByUser(q.UserID, "")
	if err != nil {
		return stylist.GapReport{}, fmt.Errorf("load wardrobe: %w", err)
	}
	return stylist.AnalyzeGaps(items), nil
}
