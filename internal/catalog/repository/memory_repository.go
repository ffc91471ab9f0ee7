package repository

import (
	"github.com/stylemind/stylemind-backend/internal/catalog/domain"
)

// MemoryOutfitRepository serves the built-in catalog. The data is
// immutable, so reads need no locking.
type MemoryOutfitRepository struct {
	women    []domain.Outfit
	men      []domain.Outfit
	combined []domain.Outfit
	products []domain.Product
}

// NewMemoryOutfitRepository creates a repository over the seeded catalog
func NewMemoryOutfitRepository() *MemoryOutfitRepository {
	combined := make([]domain.Outfit, 0, len(womenOutfits)+len(menOutfits))
	combined = append(combined, womenOutfits...)
	combined = append(combined, menOutfits...)

	return &MemoryOutfitRepository{
		women:    womenOutfits,
		men:      menOutfits,
		combined: combined,
		products: products,
	}
}

// ListByGender pages through the deck for the given gender. Anything
// other than male or female browses the combined deck.
func (r *MemoryOutfitRepository) ListByGender(gender string, skip, limit int) []domain.Outfit {
	var deck []domain.Outfit
	switch gender {
	case domain.GenderMale:
		deck = r.men
	case domain.GenderFemale:
		deck = r.women
	default:
		deck = r.combined
	}

	if skip < 0 {
		skip = 0
	}
	if skip >= len(deck) {
		return []domain.Outfit{}
	}
	end := skip + limit
	if limit <= 0 || end > len(deck) {
		end = len(deck)
	}
	return deck[skip:end]
}

// FindByID searches the combined deck
func (r *MemoryOutfitRepository) FindByID(id string) (*domain.Outfit, error) {
	for i := range r.combined {
		if r.combined[i].ID == id {
			outfit := r.combined[i]
			return &outfit, nil
		}
	}
	return nil, domain.ErrOutfitNotFound
}

// Products returns recommendations inside the inclusive price range
func (r *MemoryOutfitRepository) Products(minPrice, maxPrice int) []domain.Product {
	filtered := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Price >= minPrice && p.Price <= maxPrice {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
