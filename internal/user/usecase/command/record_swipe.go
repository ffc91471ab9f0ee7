package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stylemind/stylemind-backend/internal/user/domain"
)

// RecordSwipeCommand represents one catalog swipe
type RecordSwipeCommand struct {
	UserID        string
	OutfitID      string
	Action        string
	StyleCategory string
}

// RecordSwipeResult bundles the stored event with the updated profile.
// User is nil when the swipe references an unknown profile; the event is
// still recorded, matching the source system.
type RecordSwipeResult struct {
	Swipe *domain.SwipeEvent
	User  *domain.User
}

// RecordSwipeHandler handles swipe recording and the style DNA side effect
type RecordSwipeHandler struct {
	users  domain.UserRepository
	swipes domain.SwipeRepository
}

// NewRecordSwipeHandler creates a new record swipe handler
func NewRecordSwipeHandler(users domain.UserRepository, swipes domain.SwipeRepository) *RecordSwipeHandler {
	return &RecordSwipeHandler{users: users, swipes: swipes}
}

// Handle appends the swipe event, then adjusts the user's style DNA and
// bumps the swipe counter. An unrecognized style category or action is a
// silent no-op on the vector; the counter increments regardless.
func (h *RecordSwipeHandler) Handle(cmd RecordSwipeCommand) (*RecordSwipeResult, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if cmd.OutfitID == "" {
		return nil, fmt.Errorf("outfit id is required")
	}

	swipe := &domain.SwipeEvent{
		ID:            uuid.NewString(),
		UserID:        cmd.UserID,
		OutfitID:      cmd.OutfitID,
		Action:        cmd.Action,
		StyleCategory: cmd.StyleCategory,
		CreatedAt:     time.Now().UTC(),
	}

	if err := h.swipes.Create(swipe); err != nil {
		return nil, fmt.Errorf("failed to record swipe: %w", err)
	}

	user, err := h.users.FindByID(cmd.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &RecordSwipeResult{Swipe: swipe}, nil
		}
		return nil, err
	}

	user.StyleDNA = user.StyleDNA.ApplyFeedback(cmd.StyleCategory, cmd.Action)
	user.SwipesCount++

	if err := h.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update style dna: %w", err)
	}

	return &RecordSwipeResult{Swipe: swipe, User: user}, nil
}
