package command

import (
	"testing"

	"github.com/stylemind/stylemind-backend/internal/user/domain"
	"github.com/stylemind/stylemind-backend/internal/user/repository"
)

func seedUser(t *testing.T, users domain.UserRepository) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:       "u1",
		Name:     domain.DefaultUserName,
		StyleDNA: domain.NewStyleDNA(),
	}
	if err := users.Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestRecordSwipeLikeAdjustsDNAAndCounter(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	swipes := repository.NewMemorySwipeRepository()
	seedUser(t, users)

	handler := NewRecordSwipeHandler(users, swipes)

	result, err := handler.Handle(RecordSwipeCommand{
		UserID:        "u1",
		OutfitID:      "w_outfit_001",
		Action:        domain.ActionLike,
		StyleCategory: domain.StyleMinimalist,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if result.Swipe == nil || result.Swipe.ID == "" {
		t.Fatal("swipe event not recorded")
	}
	if result.User == nil {
		t.Fatal("expected updated user in result")
	}
	if got := result.User.StyleDNA[domain.StyleMinimalist]; got != 0.05 {
		t.Errorf("minimalist score = %v, want 0.05", got)
	}
	if result.User.SwipesCount != 1 {
		t.Errorf("swipes count = %d, want 1", result.User.SwipesCount)
	}

	stored, err := users.FindByID("u1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.SwipesCount != 1 {
		t.Errorf("persisted swipes count = %d, want 1", stored.SwipesCount)
	}
}

func TestRecordSwipeSuperlikeAndDislike(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	swipes := repository.NewMemorySwipeRepository()
	seedUser(t, users)

	handler := NewRecordSwipeHandler(users, swipes)

	if _, err := handler.Handle(RecordSwipeCommand{
		UserID: "u1", OutfitID: "o1", Action: domain.ActionSuperlike, StyleCategory: domain.StyleEdgy,
	}); err != nil {
		t.Fatalf("superlike: %v", err)
	}

	result, err := handler.Handle(RecordSwipeCommand{
		UserID: "u1", OutfitID: "o2", Action: domain.ActionDislike, StyleCategory: domain.StyleEdgy,
	})
	if err != nil {
		t.Fatalf("dislike: %v", err)
	}

	if got := result.User.StyleDNA[domain.StyleEdgy]; got < 0.07-1e-9 || got > 0.07+1e-9 {
		t.Errorf("edgy score = %v, want 0.07", got)
	}
	if result.User.SwipesCount != 2 {
		t.Errorf("swipes count = %d, want 2", result.User.SwipesCount)
	}
}

func TestRecordSwipeDislikeFloorsAtZero(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	swipes := repository.NewMemorySwipeRepository()
	seedUser(t, users)

	handler := NewRecordSwipeHandler(users, swipes)

	result, err := handler.Handle(RecordSwipeCommand{
		UserID: "u1", OutfitID: "o1", Action: domain.ActionDislike, StyleCategory: domain.StyleClassic,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := result.User.StyleDNA[domain.StyleClassic]; got != 0.0 {
		t.Errorf("classic score = %v, want 0.0", got)
	}
}

func TestRecordSwipeUnknownCategoryStillCounts(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	swipes := repository.NewMemorySwipeRepository()
	seedUser(t, users)

	handler := NewRecordSwipeHandler(users, swipes)

	result, err := handler.Handle(RecordSwipeCommand{
		UserID: "u1", OutfitID: "o1", Action: domain.ActionLike, StyleCategory: "avant_garde",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if result.User.SwipesCount != 1 {
		t.Errorf("swipes count = %d, want 1", result.User.SwipesCount)
	}
	for _, c := range domain.StyleCategories() {
		if result.User.StyleDNA[c] != 0.0 {
			t.Errorf("score for %s = %v, want unchanged 0.0", c, result.User.StyleDNA[c])
		}
	}
}

func TestRecordSwipeUnknownUserStillStoresEvent(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	swipes := repository.NewMemorySwipeRepository()

	handler := NewRecordSwipeHandler(users, swipes)

	result, err := handler.Handle(RecordSwipeCommand{
		UserID: "ghost", OutfitID: "o1", Action: domain.ActionLike, StyleCategory: domain.StyleMinimalist,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if result.User != nil {
		t.Errorf("expected nil user for unknown profile, got %+v", result.User)
	}

	events, err := swipes.FindByUser("ghost")
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("stored events = %d, want 1", len(events))
	}
}

func TestRecordSwipeValidation(t *testing.T) {
	handler := NewRecordSwipeHandler(repository.NewMemoryUserRepository(), repository.NewMemorySwipeRepository())

	if _, err := handler.Handle(RecordSwipeCommand{OutfitID: "o1"}); err == nil {
		t.Error("expected error for missing user id")
	}
	if _, err := handler.Handle(RecordSwipeCommand{UserID: "u1"}); err == nil {
		t.Error("expected error for missing outfit id")
	}
}
