package command

import (
	"fmt"

	"github.com/stylemind/stylemind-backend/internal/user/domain"
)

// UpdateUserCommand carries a field-level partial update for a profile
type UpdateUserCommand struct {
	ID     string
	Update domain.UserUpdate
}

// UpdateUserHandler handles profile updates
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle merges the provided fields into the stored profile
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	cmd.Update.Apply(user)

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
