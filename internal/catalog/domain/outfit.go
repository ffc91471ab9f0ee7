package domain

import "errors"

// ErrOutfitNotFound is returned when an outfit lookup misses
var ErrOutfitNotFound = errors.New("outfit not found")

// Genders used for catalog filtering
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// OutfitPiece is one garment of a curated outfit
type OutfitPiece struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Outfit is a curated look shown in the swipe deck
type Outfit struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	ImageURL      string        `json:"image_url"`
	Tags          []string      `json:"tags"`
	StyleCategory string        `json:"style_category"`
	Gender        string        `json:"gender"`
	Items         []OutfitPiece `json:"items"`
}

// Product is a shoppable recommendation
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       int     `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	MatchScore  float64 `json:"match_score"`
	MatchReason string  `json:"match_reason"`
	ShopURL     string  `json:"shop_url"`
}

// OutfitRepository serves the curated catalog. Gender values other than
// male or female see the combined deck.
type OutfitRepository interface {
	ListByGender(gender string, skip, limit int) []Outfit
	FindByID(id string) (*Outfit, error)
	Products(minPrice, maxPrice int) []Product
}
