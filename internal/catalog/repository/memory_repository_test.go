package repository

import (
	"errors"
	"testing"

	"github.com/stylemind/stylemind-backend/internal/catalog/domain"
)

func TestListByGender(t *testing.T) {
	repo := NewMemoryOutfitRepository()

	tests := []struct {
		name   string
		gender string
		want   int
	}{
		{"female deck", domain.GenderFemale, 12},
		{"male deck", domain.GenderMale, 12},
		{"non-binary sees all", "non-binary", 24},
		{"unspecified sees all", "", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outfits := repo.ListByGender(tt.gender, 0, 100)
			if len(outfits) != tt.want {
				t.Errorf("got %d outfits, want %d", len(outfits), tt.want)
			}
		})
	}
}

func TestListByGenderGenderPurity(t *testing.T) {
	repo := NewMemoryOutfitRepository()

	for _, outfit := range repo.ListByGender(domain.GenderMale, 0, 100) {
		if outfit.Gender != domain.GenderMale {
			t.Errorf("male deck contains %s outfit %s", outfit.Gender, outfit.ID)
		}
	}
}

func TestListByGenderPaging(t *testing.T) {
	repo := NewMemoryOutfitRepository()

	page := repo.ListByGender(domain.GenderFemale, 10, 20)
	if len(page) != 2 {
		t.Errorf("tail page length = %d, want 2", len(page))
	}

	if got := repo.ListByGender(domain.GenderFemale, 50, 20); len(got) != 0 {
		t.Errorf("out-of-range skip should be empty, got %d", len(got))
	}

	first := repo.ListByGender(domain.GenderFemale, 0, 1)
	second := repo.ListByGender(domain.GenderFemale, 1, 1)
	if len(first) != 1 || len(second) != 1 || first[0].ID == second[0].ID {
		t.Error("paging must walk the deck in order without repeats")
	}
}

func TestFindByID(t *testing.T) {
	repo := NewMemoryOutfitRepository()

	outfit, err := repo.FindByID("m_outfit_011")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if outfit.Name != "Indian Ethnic" {
		t.Errorf("name = %q", outfit.Name)
	}

	if _, err := repo.FindByID("missing"); !errors.Is(err, domain.ErrOutfitNotFound) {
		t.Errorf("expected ErrOutfitNotFound, got %v", err)
	}
}

func TestProductsPriceFilter(t *testing.T) {
	repo := NewMemoryOutfitRepository()

	all := repo.Products(0, 100000)
	if len(all) != 4 {
		t.Fatalf("got %d products, want 4", len(all))
	}

	cheap := repo.Products(0, 4000)
	if len(cheap) != 2 {
		t.Errorf("got %d products under 4000, want 2", len(cheap))
	}
	for _, p := range cheap {
		if p.Price > 4000 {
			t.Errorf("product %s price %d exceeds the cap", p.ID, p.Price)
		}
	}
}
