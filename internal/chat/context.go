package chat

import (
	"fmt"
	"strings"

	userdomain "github.com/stylemind/stylemind-backend/internal/user/domain"
	wardrobedomain "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

// preferredStyleThreshold filters weak preferences out of the context
const preferredStyleThreshold = 0.3

// BuildUserContext renders what is known about the user into the prompt
// context block. Everything is optional; the result degrades to a
// placeholder when nothing is known.
func BuildUserContext(user *userdomain.User, wardrobe []wardrobedomain.Item) string {
	if user == nil && len(wardrobe) == 0 {
		return "No user profile available yet."
	}

	var parts []string

	if user != nil {
		if user.Gender != "" {
			parts = append(parts, "Gender: "+user.Gender)
		}
		parts = append(parts, bodyAnalysisContext(user.BodyAnalysis)...)

		if preferred := user.StyleDNA.TopStyles(preferredStyleThreshold, 3); len(preferred) > 0 {
			parts = append(parts, "Preferred styles: "+strings.Join(preferred, ", "))
		}
	}

	parts = append(parts, wardrobeContext(wardrobe)...)

	if len(parts) == 0 {
		return "No detailed profile yet."
	}
	return strings.Join(parts, "\n")
}

func bodyAnalysisContext(analysis userdomain.JSONMap) []string {
	if analysis == nil {
		return nil
	}

	var parts []string

	bodyType := nestedMap(analysis, "body_type")
	if t := stringValue(bodyType, "type"); t != "" {
		parts = append(parts, "Body type: "+t)
	}

	skinTone := nestedMap(analysis, "skin_tone")
	if t := stringValue(skinTone, "type"); t != "" {
		undertone := stringValue(skinTone, "undertone")
		if undertone == "" {
			undertone = "neutral"
		}
		parts = append(parts, fmt.Sprintf("Skin tone: %s with %s undertone", t, undertone))
	}
	if colors := stringSlice(skinTone, "best_colors"); len(colors) > 0 {
		if len(colors) > 5 {
			colors = colors[:5]
		}
		parts = append(parts, "Best colors: "+strings.Join(colors, ", "))
	}

	return parts
}

// wardrobeContext summarizes up to 20 recent items by category and color
func wardrobeContext(wardrobe []wardrobedomain.Item) []string {
	if len(wardrobe) == 0 {
		return nil
	}
	if len(wardrobe) > 20 {
		wardrobe = wardrobe[:20]
	}

	counts := make(map[string]int)
	var categoryOrder []string
	var colors []string
	seenColor := make(map[string]bool)

	for _, item := range wardrobe {
		category := item.Category
		if category == "" {
			category = wardrobedomain.CategoryUnknown
		}
		if counts[category] == 0 {
			categoryOrder = append(categoryOrder, category)
		}
		counts[category]++

		itemColors := item.Colors
		if len(itemColors) > 2 {
			itemColors = itemColors[:2]
		}
		for _, color := range itemColors {
			if !seenColor[color] {
				seenColor[color] = true
				colors = append(colors, color)
			}
		}
	}

	var parts []string

	summaries := make([]string, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		summaries = append(summaries, fmt.Sprintf("%d %s", counts[category], category))
	}
	parts = append(parts, "Wardrobe: "+strings.Join(summaries, ", "))

	if len(colors) > 0 {
		if len(colors) > 8 {
			colors = colors[:8]
		}
		parts = append(parts, "Colors in wardrobe: "+strings.Join(colors, ", "))
	}

	return parts
}

func nestedMap(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	nested, _ := m[key].(map[string]interface{})
	return nested
}

func stringValue(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	value, _ := m[key].(string)
	return value
}

func stringSlice(m map[string]interface{}, key string) []string {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
