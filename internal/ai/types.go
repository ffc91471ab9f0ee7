package ai

// ClothingAnalysis describes a single garment photo
type ClothingAnalysis struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Colors      []string `json:"colors"`
	Pattern     string   `json:"pattern"`
	Occasions   []string `json:"occasions"`
	StyleTags   []string `json:"style_tags"`
	Seasonality []string `json:"seasonality"`
	Confidence  float64  `json:"confidence"`
	Diagnostic  string   `json:"error,omitempty"`
}

// BodyType is the silhouette portion of a body analysis
type BodyType struct {
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// SkinTone carries color guidance derived from the selfie
type SkinTone struct {
	Type                string   `json:"type"`
	Undertone           string   `json:"undertone"`
	BestColors          []string `json:"best_colors"`
	ColorsToAvoid       []string `json:"colors_to_avoid"`
	MetalRecommendation string   `json:"metal_recommendation"`
}

// FaceShape carries neckline and accessory guidance
type FaceShape struct {
	Type                  string   `json:"type"`
	Description           string   `json:"description"`
	FlatteringNecklines   []string `json:"flattering_necklines"`
	FlatteringAccessories []string `json:"flattering_accessories"`
}

// BodyAnalysis is the full selfie analysis result
type BodyAnalysis struct {
	BodyType               BodyType `json:"body_type"`
	SkinTone               SkinTone `json:"skin_tone"`
	FaceShape              FaceShape `json:"face_shape"`
	OverallRecommendations []string `json:"overall_recommendations"`
	Confidence             float64  `json:"confidence"`
	Diagnostic             string   `json:"error,omitempty"`
}

// ItemSummary is the attribute-only view of a wardrobe item sent to the
// model. Images are deliberately excluded from outfit prompts.
type ItemSummary struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Colors      []string `json:"colors"`
	Pattern     string   `json:"pattern"`
	Occasions   []string `json:"occasions"`
}

// SuggestOutfitInput is everything the outfit prompt is built from
type SuggestOutfitInput struct {
	Wardrobe     []ItemSummary
	Occasion     string
	StyleContext string
	WeatherLine  string
}

// SuggestedPiece is one garment the model picked
type SuggestedPiece struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	StylingNote string `json:"styling_note,omitempty"`
}

// OutfitSuggestion is the model's outfit for an occasion
type OutfitSuggestion struct {
	Success      bool             `json:"success"`
	OutfitName   string           `json:"outfit_name"`
	Outfit       []SuggestedPiece `json:"outfit"`
	OccasionFit  string           `json:"occasion_fit"`
	StylingTips  []string         `json:"styling_tips"`
	Alternatives []SuggestedPiece `json:"alternatives,omitempty"`
}

// Message is one turn of a stylist conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
