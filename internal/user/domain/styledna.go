package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Style categories tracked per user. The vector always carries all six keys.
const (
	StyleMinimalist = "minimalist"
	StyleCasualChic = "casual_chic"
	StyleStreetwear = "streetwear"
	StyleBohemian   = "bohemian"
	StyleClassic    = "classic"
	StyleEdgy       = "edgy"
)

// Swipe actions
const (
	ActionLike      = "like"
	ActionDislike   = "dislike"
	ActionSuperlike = "superlike"
)

// Feedback adjustments applied to a style score, clamped to [0, 1]
const (
	likeDelta      = 0.05
	superlikeDelta = 0.10
	dislikeDelta   = -0.03
)

// StyleCategories returns the fixed category set in stable order
func StyleCategories() []string {
	return []string{
		StyleMinimalist,
		StyleCasualChic,
		StyleStreetwear,
		StyleBohemian,
		StyleClassic,
		StyleEdgy,
	}
}

// StyleDNA maps each style category to an affinity score in [0, 1].
// Scores are independent strengths, not a probability distribution.
type StyleDNA map[string]float64

// NewStyleDNA returns a zeroed vector with every category present
func NewStyleDNA() StyleDNA {
	dna := make(StyleDNA, 6)
	for _, c := range StyleCategories() {
		dna[c] = 0.0
	}
	return dna
}

// Normalized returns a copy with every fixed category present and all
// values clamped to [0, 1]. Extra keys are carried over untouched.
func (d StyleDNA) Normalized() StyleDNA {
	out := make(StyleDNA, len(d)+6)
	for k, v := range d {
		out[k] = clamp01(v)
	}
	for _, c := range StyleCategories() {
		if _, ok := out[c]; !ok {
			out[c] = 0.0
		}
	}
	return out
}

// ApplyFeedback returns the vector after one swipe. An unrecognized
// category or action leaves the vector unchanged; callers still count
// the swipe.
func (d StyleDNA) ApplyFeedback(category, action string) StyleDNA {
	out := d.Normalized()

	current, ok := out[category]
	if !ok {
		return out
	}

	var delta float64
	switch action {
	case ActionLike:
		delta = likeDelta
	case ActionSuperlike:
		delta = superlikeDelta
	case ActionDislike:
		delta = dislikeDelta
	default:
		return out
	}

	out[category] = clamp01(current + delta)
	return out
}

// TopStyles returns the categories with score above threshold, strongest
// first, capped at limit. Used to build AI prompt context.
func (d StyleDNA) TopStyles(threshold float64, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	ranked := make([]scored, 0, len(d))
	for _, c := range StyleCategories() {
		if d[c] > threshold {
			ranked = append(ranked, scored{name: c, score: d[c]})
		}
	}

	// Insertion sort keeps the fixed category order as the tie-break
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].score > ranked[j-1].score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.name
	}
	return names
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// Value implements driver.Valuer so GORM stores the vector as jsonb
func (d StyleDNA) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner
func (d *StyleDNA) Scan(src interface{}) error {
	if src == nil {
		*d = NewStyleDNA()
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported style dna source type %T", src)
	}

	var decoded map[string]float64
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to decode style dna: %w", err)
	}
	*d = StyleDNA(decoded).Normalized()
	return nil
}
