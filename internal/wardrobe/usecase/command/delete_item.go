package command

import (
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// DeleteItemCommand represents the command to remove an item
type DeleteItemCommand struct {
	ID string
}

// DeleteItemHandler handles wardrobe item removal
type DeleteItemHandler struct {
	repo domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("item id is required")
	}
	return h.repo.Delete(cmd.ID)
}
