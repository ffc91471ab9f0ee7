package domain

import (
	"reflect"
	"testing"
)

func TestNewStyleDNAHasAllCategoriesZeroed(t *testing.T) {
	dna := NewStyleDNA()

	if len(dna) != 6 {
		t.Fatalf("len = %d, want 6", len(dna))
	}
	for _, c := range StyleCategories() {
		if v, ok := dna[c]; !ok || v != 0.0 {
			t.Errorf("dna[%s] = %v (present=%v), want 0.0", c, v, ok)
		}
	}
}

func TestApplyFeedbackDeltas(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		action string
		want   float64
	}{
		{"like adds 0.05", 0.5, ActionLike, 0.55},
		{"superlike adds 0.10", 0.5, ActionSuperlike, 0.6},
		{"dislike subtracts 0.03", 0.5, ActionDislike, 0.47},
		{"like clamps at 1", 0.98, ActionLike, 1.0},
		{"dislike clamps at 0", 0.01, ActionDislike, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dna := NewStyleDNA()
			dna[StyleMinimalist] = tt.start

			got := dna.ApplyFeedback(StyleMinimalist, tt.action)
			if diff := got[StyleMinimalist] - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("score = %v, want %v", got[StyleMinimalist], tt.want)
			}
		})
	}
}

func TestApplyFeedbackUnknownCategoryOrActionIsNoOp(t *testing.T) {
	dna := NewStyleDNA()
	dna[StyleEdgy] = 0.4

	got := dna.ApplyFeedback("vaporwave", ActionLike)
	if !reflect.DeepEqual(got, dna.Normalized()) {
		t.Errorf("unknown category changed the vector: %v", got)
	}

	got = dna.ApplyFeedback(StyleEdgy, "skip")
	if got[StyleEdgy] != 0.4 {
		t.Errorf("unknown action changed the score: %v", got[StyleEdgy])
	}
}

func TestApplyFeedbackDoesNotMutateReceiver(t *testing.T) {
	dna := NewStyleDNA()
	dna[StyleClassic] = 0.3

	_ = dna.ApplyFeedback(StyleClassic, ActionSuperlike)
	if dna[StyleClassic] != 0.3 {
		t.Errorf("receiver mutated: %v", dna[StyleClassic])
	}
}

func TestNormalizedFillsMissingKeysAndClamps(t *testing.T) {
	dna := StyleDNA{StyleBohemian: 1.7, "custom": -0.2}

	got := dna.Normalized()
	if got[StyleBohemian] != 1.0 {
		t.Errorf("bohemian = %v, want 1.0", got[StyleBohemian])
	}
	if got["custom"] != 0.0 {
		t.Errorf("custom = %v, want clamped 0.0", got["custom"])
	}
	for _, c := range StyleCategories() {
		if _, ok := got[c]; !ok {
			t.Errorf("missing category %s after normalize", c)
		}
	}
}

func TestTopStyles(t *testing.T) {
	dna := NewStyleDNA()
	dna[StyleStreetwear] = 0.9
	dna[StyleCasualChic] = 0.5
	dna[StyleMinimalist] = 0.3
	dna[StyleClassic] = 0.2 // at threshold, excluded

	got := dna.TopStyles(0.2, 3)
	want := []string{StyleStreetwear, StyleCasualChic, StyleMinimalist}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopStyles = %v, want %v", got, want)
	}

	if got := dna.TopStyles(0.2, 2); len(got) != 2 {
		t.Errorf("limit ignored: %v", got)
	}

	if got := NewStyleDNA().TopStyles(0.2, 3); len(got) != 0 {
		t.Errorf("zero vector produced styles: %v", got)
	}
}

func TestTopStylesTieKeepsCategoryOrder(t *testing.T) {
	dna := NewStyleDNA()
	dna[StyleEdgy] = 0.5
	dna[StyleMinimalist] = 0.5

	got := dna.TopStyles(0.2, 3)
	want := []string{StyleMinimalist, StyleEdgy}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopStyles = %v, want %v", got, want)
	}
}
