package query

import (
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/user/domain"
)

// GetUserQuery represents the query to fetch a profile by id
type GetUserQuery struct {
	ID string
}

// GetUserHandler handles profile lookups
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the query
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return h.repo.FindByID(q.ID)
}
