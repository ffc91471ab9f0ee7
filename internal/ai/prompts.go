package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

const clothingPrompt = `Analyze this clothing item image and provide detailed fashion attributes.

You must respond with ONLY valid JSON in this exact format:
{
    "category": "Tops|Bottoms|Dresses|Outerwear|Shoes|Accessories",
    "subcategory": "specific type like T-Shirt, Jeans, Kurta, Saree, etc.",
    "colors": ["primary color", "secondary color if any"],
    "pattern": "Solid|Striped|Floral|Plaid|Printed|Embroidered",
    "occasions": ["Casual", "Work", "Party", "Date", "Formal"],
    "style_tags": ["minimalist", "bohemian", "streetwear", "ethnic", "classic"],
    "seasonality": ["Spring", "Summer", "Fall", "Winter", "All-Season"],
    "confidence": 0.95
}

Be specific with colors (e.g., "Navy Blue" not just "Blue").
Recognize Indian garments: kurta, kurti, saree, lehenga, salwar, dupatta, juttis, etc.`

const bodyPrompt = `Analyze this photo for personalized fashion recommendations.

Provide a positive, empowering analysis. Respond with ONLY valid JSON:
{
    "body_type": {
        "type": "Rectangle|Hourglass|Pear|Apple|Inverted Triangle|Athletic",
        "description": "Brief positive description",
        "recommendations": ["flattering style 1", "flattering style 2", "flattering style 3"]
    },
    "skin_tone": {
        "type": "Fair|Light|Medium|Tan|Deep",
        "undertone": "warm|cool|neutral",
        "best_colors": ["color1", "color2", "color3", "color4", "color5"],
        "colors_to_avoid": ["color1", "color2"],
        "metal_recommendation": "Gold|Silver|Rose Gold|Both"
    },
    "face_shape": {
        "type": "Oval|Round|Square|Heart|Oblong|Diamond",
        "description": "Brief description",
        "flattering_necklines": ["V-neck", "Scoop", etc.],
        "flattering_accessories": ["earring style", "glasses style"]
    },
    "overall_recommendations": [
        "Personalized tip 1",
        "Personalized tip 2",
        "Personalized tip 3"
    ],
    "confidence": 0.85
}

Be encouraging and positive. Focus on what WILL look great.`

// buildOutfitPrompt renders the wardrobe and styling context into the
// outfit suggestion prompt. Item images are never included.
func buildOutfitPrompt(in SuggestOutfitInput) string {
	summary, _ := json.MarshalIndent(in.Wardrobe, "", "  ")

	styleContext := in.StyleContext
	if styleContext == "" {
		styleContext = "Not specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create an outfit suggestion from this wardrobe for a %s occasion.\n\n", in.Occasion)
	fmt.Fprintf(&b, "WARDROBE ITEMS:\n%s\n\n", summary)
	fmt.Fprintf(&b, "CONTEXT:\n- Occasion: %s\n- Style preferences: %s\n", in.Occasion, styleContext)
	if in.WeatherLine != "" {
		fmt.Fprintf(&b, "- %s\n", in.WeatherLine)
	}
	fmt.Fprintf(&b, `
Respond with ONLY valid JSON:
{
    "success": true,
    "outfit_name": "Creative name for the outfit",
    "outfit": [
        {"id": "item_id_from_wardrobe", "type": "top/bottom/etc", "name": "Item description", "styling_note": "How to wear it"}
    ],
    "occasion_fit": "Why this works for %s",
    "styling_tips": ["Tip 1", "Tip 2"],
    "alternatives": [
        {"id": "alt_item_id", "type": "category", "name": "Alternative option"}
    ]
}

IMPORTANT: Only use item IDs that exist in the wardrobe. Create a cohesive, color-coordinated outfit.`, in.Occasion)
	return b.String()
}

// trimJSONFence strips the markdown code fence some models wrap JSON
// responses in.
func trimJSONFence(message string) string {
	message = strings.TrimSpace(message)
	message = strings.TrimPrefix(message, "```json")
	message = strings.TrimPrefix(message, "```")
	message = strings.TrimSuffix(message, "```")
	return strings.TrimSpace(message)
}
