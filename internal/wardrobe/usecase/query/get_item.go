package query

import (
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// GetItemQuery represents the query to fetch one item by id
type GetItemQuery struct {
	ID string
}

// GetItemHandler handles item lookups
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the query
func (h *GetItemHandler) Handle(q GetItemQuery) (*domain.Item, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("item id is required")
	}
	return h.repo.FindByID(q.ID)
}
