package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// AddItemCommand represents a wardrobe submission. Attributes may arrive
// pre-filled from the clothing analyzer or default to Unknown.
type AddItemCommand struct {
	UserID      string
	ImageBase64 string
	Category    string
	Subcategory string
	Colors      []string
	Pattern     string
	Occasions   []string
	Brand       *string
}

// AddItemHandler handles wardrobe item creation
type AddItemHandler struct {
	repo domain.ItemRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.ItemRepository) *AddItemHandler {
	return &AddItemHandler{repo: repo}
}

// Handle executes the add item command. Identity and creation timestamp
// are assigned here when absent; insertion always succeeds.
func (h *AddItemHandler) Handle(cmd AddItemCommand) (*domain.Item, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	category := cmd.Category
	if category == "" {
		category = domain.CategoryUnknown
	}
	subcategory := cmd.Subcategory
	if subcategory == "" {
		subcategory = domain.CategoryUnknown
	}
	pattern := cmd.Pattern
	if pattern == "" {
		pattern = domain.DefaultPattern
	}

	item := &domain.Item{
		ID:          uuid.NewString(),
		UserID:      cmd.UserID,
		ImageBase64: cmd.ImageBase64,
		Category:    category,
		Subcategory: subcategory,
		Colors:      pq.StringArray(cmd.Colors),
		Pattern:     pattern,
		Occasions:   pq.StringArray(cmd.Occasions),
		Brand:       cmd.Brand,
		CreatedAt:   time.Now().UTC(),
	}
	if item.Colors == nil {
		item.Colors = pq.StringArray{}
	}
	if item.Occasions == nil {
		item.Occasions = pq.StringArray{}
	}

	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to add wardrobe item: %w", err)
	}

	return item, nil
}
