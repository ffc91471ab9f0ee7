package query

import (
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/user/domain"
)

// ListSwipesQuery represents the query for a user's swipe history
type ListSwipesQuery struct {
	UserID string
}

// ListSwipesHandler handles swipe history lookups
type ListSwipesHandler struct {
	repo domain.SwipeRepository
}

// NewListSwipesHandler creates a new list swipes handler
func NewListSwipesHandler(repo domain.SwipeRepository) *ListSwipesHandler {
	return &ListSwipesHandler{repo: repo}
}

// Handle executes the query. Unknown users yield an empty list, not an error.
func (h *ListSwipesHandler) Handle(q ListSwipesQuery) ([]domain.SwipeEvent, error) {
	if q.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return h.repo.FindByUser(q.UserID)
}
