package domain

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// ErrItemNotFound is returned when the referenced item id is absent
var ErrItemNotFound = errors.New("wardrobe item not found")

// Clothing categories. The enumeration is closed; analyzer output that
// does not fit falls back to Unknown.
const (
	CategoryTops        = "Tops"
	CategoryBottoms     = "Bottoms"
	CategoryDresses     = "Dresses"
	CategoryOuterwear   = "Outerwear"
	CategoryShoes       = "Shoes"
	CategoryAccessories = "Accessories"
	CategoryUnknown     = "Unknown"
)

// Occasion tags describe contexts a garment suits
const (
	OccasionCasual = "Casual"
	OccasionWork   = "Work"
	OccasionParty  = "Party"
	OccasionDate   = "Date"
	OccasionFormal = "Formal"
)

// DefaultPattern is assigned when the analyzer reports none
const DefaultPattern = "Solid"

// Categories returns the six fixed categories in stable order
func Categories() []string {
	return []string{
		CategoryTops,
		CategoryBottoms,
		CategoryDresses,
		CategoryOuterwear,
		CategoryShoes,
		CategoryAccessories,
	}
}

// IsKnownCategory reports whether c is one of the six fixed categories
func IsKnownCategory(c string) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Item represents one wardrobe garment (domain model)
type Item struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string         `json:"user_id" gorm:"index;not null"`
	ImageBase64 string         `json:"image_base64" gorm:"type:text"`
	Category    string         `json:"category" gorm:"index;not null"`
	Subcategory string         `json:"subcategory"`
	Colors      pq.StringArray `json:"colors" gorm:"type:text[]"`
	Pattern     string         `json:"pattern"`
	Occasions   pq.StringArray `json:"occasions" gorm:"type:text[]"`
	Brand       *string        `json:"brand,omitempty"`
	TimesWorn   int            `json:"times_worn" gorm:"default:0"`
	LastWorn    *time.Time     `json:"last_worn,omitempty"`
	Favorite    bool           `json:"favorite" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "wardrobe_items"
}

// PrimaryColor returns the first listed color, or "Unknown" when the
// colors list is empty. Index 0 is "the color" everywhere a single color
// is needed.
func (i *Item) PrimaryColor() string {
	if len(i.Colors) == 0 {
		return "Unknown"
	}
	return i.Colors[0]
}

// SuitsAny reports whether the item's occasion tags intersect targets
func (i *Item) SuitsAny(targets []string) bool {
	for _, have := range i.Occasions {
		for _, want := range targets {
			if have == want {
				return true
			}
		}
	}
	return false
}

// ItemUpdate carries a field-level partial update; nil means "leave as is".
// Identity, owning user and creation timestamp cannot be updated.
type ItemUpdate struct {
	Category    *string    `json:"category,omitempty"`
	Subcategory *string    `json:"subcategory,omitempty"`
	Colors      []string   `json:"colors,omitempty"`
	Pattern     *string    `json:"pattern,omitempty"`
	Occasions   []string   `json:"occasions,omitempty"`
	Brand       *string    `json:"brand,omitempty"`
	TimesWorn   *int       `json:"times_worn,omitempty"`
	LastWorn    *time.Time `json:"last_worn,omitempty"`
	Favorite    *bool      `json:"favorite,omitempty"`
}

// Apply merges the provided fields into the item
func (u *ItemUpdate) Apply(item *Item) {
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Subcategory != nil {
		item.Subcategory = *u.Subcategory
	}
	if u.Colors != nil {
		item.Colors = pq.StringArray(u.Colors)
	}
	if u.Pattern != nil {
		item.Pattern = *u.Pattern
	}
	if u.Occasions != nil {
		item.Occasions = pq.StringArray(u.Occasions)
	}
	if u.Brand != nil {
		item.Brand = u.Brand
	}
	if u.TimesWorn != nil {
		item.TimesWorn = *u.TimesWorn
	}
	if u.LastWorn != nil {
		item.LastWorn = u.LastWorn
	}
	if u.Favorite != nil {
		item.Favorite = *u.Favorite
	}
}

// ItemRepository defines the contract for wardrobe data access.
// FindByUser returns items in insertion order; the selector's tie-break
// depends on that ordering.
type ItemRepository interface {
	Create(item *Item) error
	FindByUser(userID string, category string) ([]Item, error)
	FindByID(id string) (*Item, error)
	Update(item *Item) error
	Delete(id string) error
}
