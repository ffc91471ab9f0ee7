package query

import (
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// ListItemsQuery represents the query for a user's wardrobe
type ListItemsQuery struct {
	UserID   string
	Category string // empty or "All" means no filter
}

// ListItemsHandler handles wardrobe listings
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the query. Unknown users yield an empty slice, not an
// error.
func (h *ListItemsHandler) Handle(q ListItemsQuery) ([]domain.Item, error) {
	if q.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return h.repo.FindByUser(q.UserID, q.Category)
}
