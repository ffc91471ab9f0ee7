package command

import (
	"testing"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
	"github.com/stylemind/stylemind-backend/internal/wardrobe/repository"
)

func TestAddItemDefaultsUnknownAttributes(t *testing.T) {
	repo := repository.NewMemoryItemRepository()
	handler := NewAddItemHandler(repo)

	item, err := handler.Handle(AddItemCommand{UserID: "u1"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.Category != domain.CategoryUnknown {
		t.Errorf("category = %s, want %s", item.Category, domain.CategoryUnknown)
	}
	if item.Subcategory != domain.CategoryUnknown {
		t.Errorf("subcategory = %s, want %s", item.Subcategory, domain.CategoryUnknown)
	}
	if item.Pattern != domain.DefaultPattern {
		t.Errorf("pattern = %s, want %s", item.Pattern, domain.DefaultPattern)
	}
	if item.Colors == nil || item.Occasions == nil {
		t.Error("expected empty slices, not nil")
	}
	if item.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}
}

func TestAddItemKeepsAnalyzerAttributes(t *testing.T) {
	repo := repository.NewMemoryItemRepository()
	handler := NewAddItemHandler(repo)

	brand := "Uniqlo"
	item, err := handler.Handle(AddItemCommand{
		UserID:      "u1",
		Category:    domain.CategoryTops,
		Subcategory: "Shirt",
		Colors:      []string{"White", "Blue"},
		Pattern:     "Striped",
		Occasions:   []string{domain.OccasionWork},
		Brand:       &brand,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if item.Category != domain.CategoryTops || item.Subcategory != "Shirt" {
		t.Errorf("category/subcategory = %s/%s", item.Category, item.Subcategory)
	}
	if item.PrimaryColor() != "White" {
		t.Errorf("primary color = %s, want White", item.PrimaryColor())
	}
	if item.Brand == nil || *item.Brand != "Uniqlo" {
		t.Errorf("brand = %v", item.Brand)
	}

	stored, err := repo.FindByID(item.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Pattern != "Striped" {
		t.Errorf("stored pattern = %s", stored.Pattern)
	}
}

func TestAddItemRequiresUserID(t *testing.T) {
	handler := NewAddItemHandler(repository.NewMemoryItemRepository())

	if _, err := handler.Handle(AddItemCommand{}); err == nil {
		t.Error("expected error for missing user id")
	}
}
