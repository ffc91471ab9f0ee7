package chat

import (
	"strings"
	"testing"

	userdomain "github.com/stylemind/stylemind-backend/internal/user/domain"
	wardrobedomain "github.com/stylemind/stylemind-backend/internal/wardrobe/domain"
)

func TestBuildUserContextEmpty(t *testing.T) {
	if got := BuildUserContext(nil, nil); got != "No user profile available yet." {
		t.Errorf("got %q", got)
	}
}

func TestBuildUserContextFullProfile(t *testing.T) {
	dna := userdomain.NewStyleDNA()
	dna[userdomain.StyleMinimalist] = 0.8
	dna[userdomain.StyleClassic] = 0.6

	user := &userdomain.User{
		ID:     "u1",
		Gender: "female",
		BodyAnalysis: userdomain.JSONMap{
			"body_type": map[string]interface{}{"type": "Hourglass"},
			"skin_tone": map[string]interface{}{
				"type":        "Medium",
				"undertone":   "warm",
				"best_colors": []interface{}{"Coral", "Gold", "Olive", "Terracotta", "Cream", "Rust"},
			},
		},
		StyleDNA: dna,
	}
	wardrobe := []wardrobedomain.Item{
		{Category: wardrobedomain.CategoryTops, Colors: []string{"White", "Navy", "Red"}},
		{Category: wardrobedomain.CategoryTops, Colors: []string{"Black"}},
		{Category: wardrobedomain.CategoryShoes, Colors: []string{"White"}},
	}

	got := BuildUserContext(user, wardrobe)

	for _, fragment := range []string{
		"Gender: female",
		"Body type: Hourglass",
		"Skin tone: Medium with warm undertone",
		"Best colors: Coral, Gold, Olive, Terracotta, Cream",
		"Preferred styles: minimalist, classic",
		"Wardrobe: 2 Tops, 1 Shoes",
		"Colors in wardrobe: White, Navy, Black",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("context missing %q:\n%s", fragment, got)
		}
	}

	// Only the first two colors per item count toward the palette.
	if strings.Contains(got, "Red") {
		t.Error("third color of an item must not appear in the palette")
	}
	// Best colors cap at five.
	if strings.Contains(got, "Rust") {
		t.Error("best colors must cap at five")
	}
}

func TestBuildUserContextWeakPreferencesOmitted(t *testing.T) {
	user := &userdomain.User{ID: "u1", StyleDNA: userdomain.NewStyleDNA()}

	got := BuildUserContext(user, nil)

	if strings.Contains(got, "Preferred styles") {
		t.Errorf("baseline DNA should not produce preferred styles:\n%s", got)
	}
	if got != "No detailed profile yet." {
		t.Errorf("got %q", got)
	}
}
