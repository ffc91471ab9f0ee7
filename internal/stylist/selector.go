package stylist

import (
	wardrobe "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// Piece is one chosen garment in an outfit plan
type Piece struct {
	ItemID      string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

// Plan is the selector's output: zero to three pieces. A present wardrobe
// that matched no category still yields a successful, empty plan.
type Plan struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message,omitempty"`
	Occasion    string  `json:"occasion,omitempty"`
	OutfitName  string  `json:"outfit_name,omitempty"`
	Outfit      []Piece `json:"outfit"`
	OccasionFit string  `json:"occasion_fit,omitempty"`
	StylingTips []string `json:"styling_tips,omitempty"`
	WeatherNote string  `json:"weather_note,omitempty"`
	Source      string  `json:"source,omitempty"`
	Diagnostic  string  `json:"diagnostic,omitempty"`
}

// Plan sources
const (
	SourceRules = "rules"
	SourceAI    = "ai"
)

// EmptyWardrobeMessage is returned when the user has nothing to style
const EmptyWardrobeMessage = "Add items to your wardrobe to get outfit suggestions"

// occasionTargets maps a requested occasion to the acceptable tags, in
// preference order. Unrecognized occasions fall back to Casual.
var occasionTargets = map[string][]string{
	"work":   {wardrobe.OccasionWork, wardrobe.OccasionFormal},
	"casual": {wardrobe.OccasionCasual},
	"date":   {wardrobe.OccasionDate, wardrobe.OccasionParty},
	"party":  {wardrobe.OccasionParty, wardrobe.OccasionDate},
}

// TargetTags resolves an occasion string to its acceptable occasion tags
func TargetTags(occasion string) []string {
	if tags, ok := occasionTargets[occasion]; ok {
		return tags
	}
	return []string{wardrobe.OccasionCasual}
}

// SelectOutfit deterministically assembles an outfit from the wardrobe.
// Ties break on storage order; there is no scoring and no randomness, and
// the function never fails: missing categories just shrink the plan.
func SelectOutfit(items []wardrobe.Item, occasion string) Plan {
	if len(items) == 0 {
		return Plan{
			Success: false,
			Message: EmptyWardrobeMessage,
			Source:  SourceRules,
		}
	}

	targets := TargetTags(occasion)

	var tops, bottoms, shoes []wardrobe.Item
	for _, item := range items {
		switch item.Category {
		case wardrobe.CategoryTops, wardrobe.CategoryDresses:
			tops = append(tops, item)
		case wardrobe.CategoryBottoms:
			bottoms = append(bottoms, item)
		case wardrobe.CategoryShoes:
			shoes = append(shoes, item)
		}
	}

	plan := Plan{
		Success:  true,
		Occasion: occasion,
		Source:   SourceRules,
	}

	var top *wardrobe.Item
	if len(tops) > 0 {
		top = pickByOccasion(tops, targets)
		plan.Outfit = append(plan.Outfit, pieceFrom(top, top.Category))
	}

	// A dress covers the lower body; pairing it with separate bottoms
	// would be a styling error.
	if len(bottoms) > 0 && top != nil && top.Category != wardrobe.CategoryDresses {
		bottom := pickByOccasion(bottoms, targets)
		plan.Outfit = append(plan.Outfit, pieceFrom(bottom, wardrobe.CategoryBottoms))
	}

	// Shoes skip occasion filtering entirely: first in storage order wins
	if len(shoes) > 0 {
		plan.Outfit = append(plan.Outfit, pieceFrom(&shoes[0], wardrobe.CategoryShoes))
	}

	return plan
}

// pickByOccasion returns the first item whose tags intersect targets, or
// the first item of the pool when nothing matches. Pool must be non-empty.
func pickByOccasion(pool []wardrobe.Item, targets []string) *wardrobe.Item {
	for i := range pool {
		if pool[i].SuitsAny(targets) {
			return &pool[i]
		}
	}
	return &pool[0]
}

func pieceFrom(item *wardrobe.Item, pieceType string) Piece {
	return Piece{
		ItemID:      item.ID,
		Type:        pieceType,
		Name:        item.Subcategory,
		Color:       item.PrimaryColor(),
		ImageBase64: item.ImageBase64,
	}
}
