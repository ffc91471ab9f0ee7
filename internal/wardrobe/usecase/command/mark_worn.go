package command

import (
	"fmt"
	"time"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// MarkWornCommand records one wear of an item
type MarkWornCommand struct {
	ID string
}

// MarkWornHandler handles wear tracking
type MarkWornHandler struct {
	repo domain.ItemRepository
}

// NewMarkWornHandler creates a new mark worn handler
func NewMarkWornHandler(repo domain.ItemRepository) *MarkWornHandler {
	return &MarkWornHandler{repo: repo}
}

// Handle bumps the wear counter and stamps last-worn
func (h *MarkWornHandler) Handle(cmd MarkWornCommand) (*domain.Item, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("item id is required")
	}

	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item.TimesWorn++
	item.LastWorn = &now

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to record wear: %w", err)
	}

	return item, nil
}
