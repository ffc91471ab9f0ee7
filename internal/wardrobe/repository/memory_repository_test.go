package repository

import (
	"errors"
	"testing"

	"github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

func seedItem(t *testing.T, repo *MemoryItemRepository, id, userID, category string) {
	t.Helper()

	if err := repo.Create(&domain.Item{ID: id, UserID: userID, Category: category}); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestMemoryItemRepositoryPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryItemRepository()
	seedItem(t, repo, "i1", "u1", domain.CategoryTops)
	seedItem(t, repo, "i2", "u1", domain.CategoryShoes)
	seedItem(t, repo, "i3", "u1", domain.CategoryTops)
	seedItem(t, repo, "other", "u2", domain.CategoryTops)

	items, err := repo.FindByUser("u1", "")
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	for i, want := range []string{"i1", "i2", "i3"} {
		if items[i].ID != want {
			t.Errorf("items[%d] = %s, want %s", i, items[i].ID, want)
		}
	}
}

func TestMemoryItemRepositoryCategoryFilter(t *testing.T) {
	repo := NewMemoryItemRepository()
	seedItem(t, repo, "i1", "u1", domain.CategoryTops)
	seedItem(t, repo, "i2", "u1", domain.CategoryShoes)

	items, err := repo.FindByUser("u1", domain.CategoryShoes)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(items) != 1 || items[0].ID != "i2" {
		t.Errorf("filtered items = %v", items)
	}

	// "All" disables the filter like an empty category
	items, err = repo.FindByUser("u1", "All")
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("All filter returned %d items, want 2", len(items))
	}
}

func TestMemoryItemRepositoryFindUpdateDelete(t *testing.T) {
	repo := NewMemoryItemRepository()
	seedItem(t, repo, "i1", "u1", domain.CategoryTops)

	item, err := repo.FindByID("i1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}

	item.TimesWorn = 3
	if err := repo.Update(item); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, err := repo.FindByID("i1")
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if stored.TimesWorn != 3 {
		t.Errorf("times worn = %d, want 3", stored.TimesWorn)
	}

	if err := repo.Delete("i1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID("i1"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound after delete, got %v", err)
	}

	items, err := repo.FindByUser("u1", "")
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items after delete = %v", items)
	}
}

func TestMemoryItemRepositoryNotFound(t *testing.T) {
	repo := NewMemoryItemRepository()

	if _, err := repo.FindByID("missing"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("FindByID: %v", err)
	}
	if err := repo.Update(&domain.Item{ID: "missing"}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("Update: %v", err)
	}
	if err := repo.Delete("missing"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("Delete: %v", err)
	}
}
