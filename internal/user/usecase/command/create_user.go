package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stylemind/stylemind-backend/internal/user/domain"
)

// CreateUserCommand represents the command to create a profile
type CreateUserCommand struct {
	Name   string
	Email  string
	Gender string
}

// CreateUserHandler handles profile creation
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command. Every field is optional:
// profiles start anonymous and fill in during onboarding.
func (h *CreateUserHandler) Handle(cmd CreateUserCommand) (*domain.User, error) {
	name := cmd.Name
	if name == "" {
		name = domain.DefaultUserName
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Gender:    cmd.Gender,
		StyleDNA:  domain.NewStyleDNA(),
		CreatedAt: time.Now().UTC(),
	}
	if cmd.Email != "" {
		email := cmd.Email
		user.Email = &email
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
