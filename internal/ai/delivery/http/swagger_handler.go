package http

// AnalyzeClothing godoc
// @Summary Analyze a clothing photo
// @Description Classify a garment photo into category, colors, pattern and occasions. Falls back to fixed defaults when the model is unavailable.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body object{image_base64=string} true "Base64 encoded image"
// @Success 200 {object} object{category=string,subcategory=string,colors=[]string,pattern=string,occasions=[]string,style_tags=[]string,seasonality=[]string,confidence=number}
// @Failure 400 {object} object{error=string}
// @Router /api/analyze-clothing [post]
func (h *AnalysisHandler) AnalyzeClothingDoc() {}

// AnalyzeBody godoc
// @Summary Analyze a body photo
// @Description Derive body type, skin tone and face shape with styling recommendations. Falls back to neutral defaults when the model is unavailable.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body object{image_base64=string} true "Base64 encoded image"
// @Success 200 {object} object{body_type=object,skin_tone=object,face_shape=object,confidence=number}
// @Failure 400 {object} object{error=string}
// @Router /api/analyze-body [post]
func (h *AnalysisHandler) AnalyzeBodyDoc() {}
