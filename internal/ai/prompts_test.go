package ai

import (
	"strings"
	"testing"
)

func TestTrimJSONFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimJSONFence(tt.in); got != tt.want {
				t.Errorf("trimJSONFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildOutfitPrompt(t *testing.T) {
	in := SuggestOutfitInput{
		Wardrobe: []ItemSummary{
			{ID: "item-1", Category: "Tops", Subcategory: "Shirt", Colors: []string{"White"}, Pattern: "Solid", Occasions: []string{"Work"}},
		},
		Occasion:     "work",
		StyleContext: "Classic, Minimalist",
		WeatherLine:  "Weather: 28°C, Partly Cloudy",
	}

	prompt := buildOutfitPrompt(in)

	for _, fragment := range []string{"item-1", "work occasion", "Classic, Minimalist", "Weather: 28°C", "ONLY valid JSON"} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestBuildOutfitPromptDefaults(t *testing.T) {
	prompt := buildOutfitPrompt(SuggestOutfitInput{Occasion: "casual"})

	if !strings.Contains(prompt, "Not specified") {
		t.Error("empty style context should render as Not specified")
	}
	if strings.Contains(prompt, "Weather:") {
		t.Error("absent weather must not add a weather line")
	}
}

func TestImageDataURL(t *testing.T) {
	if got := imageDataURL("abc123"); got != "data:image/jpeg;base64,abc123" {
		t.Errorf("bare payload = %q", got)
	}
	uri := "data:image/png;base64,abc123"
	if got := imageDataURL(uri); got != uri {
		t.Errorf("data URI must pass through, got %q", got)
	}
}

func TestFallbackClothingAnalysis(t *testing.T) {
	out := FallbackClothingAnalysis("model unreachable")

	if out.Category != "Tops" || out.Subcategory != "Unknown" {
		t.Errorf("unexpected fallback classification: %s/%s", out.Category, out.Subcategory)
	}
	if out.Confidence != 0 {
		t.Errorf("fallback confidence = %v, want 0", out.Confidence)
	}
	if out.Diagnostic != "model unreachable" {
		t.Errorf("diagnostic = %q", out.Diagnostic)
	}
}

func TestFallbackBodyAnalysis(t *testing.T) {
	out := FallbackBodyAnalysis("timeout")

	if out.SkinTone.Type != "Medium" || out.SkinTone.Undertone != "neutral" {
		t.Errorf("unexpected skin tone fallback: %+v", out.SkinTone)
	}
	if out.FaceShape.Type != "Oval" {
		t.Errorf("face shape = %q, want Oval", out.FaceShape.Type)
	}
	if out.Confidence != 0 {
		t.Errorf("fallback confidence = %v, want 0", out.Confidence)
	}
}
