package command

import (
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// UpdateItemCommand carries a field-level partial update for an item
type UpdateItemCommand struct {
	ID     string
	Update domain.ItemUpdate
}

// UpdateItemHandler handles wardrobe item updates
type UpdateItemHandler struct {
	repo domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle merges the provided fields into the stored item. Identity,
// owning user and creation timestamp are never altered.
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.Item, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("item id is required")
	}

	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	cmd.Update.Apply(item)

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update wardrobe item: %w", err)
	}

	return item, nil
}
