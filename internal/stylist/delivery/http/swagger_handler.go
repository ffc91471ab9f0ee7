package http

// SuggestOutfit godoc
// @Summary Suggest an outfit
// @Description Assemble an outfit from the user's wardrobe for an occasion. Always returns 200; an empty wardrobe yields success=false in the body.
// @Tags Stylist
// @Accept json
// @Produce json
// @Param request body object{user_id=string,occasion=string,weather=object{temperature=number,condition=string}} true "Suggestion request"
// @Success 200 {object} object{success=bool,occasion=string,outfit=[]object{id=string,type=string,name=string,color=string},weather_note=string,source=string}
// @Failure 400 {object} object{error=string}
// @Router /api/outfit-suggestion [post]
func (h *StylistHandler) SuggestOutfitDoc() {}

// AnalyzeGaps godoc
// @Summary Analyze wardrobe gaps
// @Description Tally the wardrobe per category and suggest missing staples
// @Tags Stylist
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} object{gaps=[]object{item=string,reason=string,priority=string},category_counts=object}
// @Failure 400 {object} object{error=string}
// @Router /api/wardrobe-gaps/{user_id} [get]
func (h *StylistHandler) AnalyzeGapsDoc() {}
