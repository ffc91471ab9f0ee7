package ai

// Fixed defaults returned when the model is unreachable or emits
// unparseable output. The diagnostic carries the underlying error text
// so clients can surface it without the request failing.

// FallbackClothingAnalysis is the neutral garment classification
func FallbackClothingAnalysis(diagnostic string) ClothingAnalysis {
	return ClothingAnalysis{
		Category:    "Tops",
		Subcategory: "Unknown",
		Colors:      []string{"Unknown"},
		Pattern:     "Solid",
		Occasions:   []string{"Casual"},
		StyleTags:   []string{"unclassified"},
		Seasonality: []string{"All-Season"},
		Confidence:  0,
		Diagnostic:  diagnostic,
	}
}

// FallbackBodyAnalysis is the neutral selfie analysis
func FallbackBodyAnalysis(diagnostic string) BodyAnalysis {
	return BodyAnalysis{
		BodyType: BodyType{
			Type:            "Unknown",
			Description:     "Unable to analyze",
			Recommendations: []string{"Try uploading a clearer photo"},
		},
		SkinTone: SkinTone{
			Type:                "Medium",
			Undertone:           "neutral",
			BestColors:          []string{"Navy", "White", "Black", "Grey"},
			ColorsToAvoid:       []string{},
			MetalRecommendation: "Both",
		},
		FaceShape: FaceShape{
			Type:                  "Oval",
			Description:           "Versatile shape",
			FlatteringNecklines:   []string{"Most styles work well"},
			FlatteringAccessories: []string{"Most styles complement"},
		},
		OverallRecommendations: []string{"Upload a clearer photo for personalized recommendations"},
		Confidence:             0,
		Diagnostic:             diagnostic,
	}
}
