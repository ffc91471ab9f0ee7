package http

// ListOutfits godoc
// @Summary List curated outfits
// @Description Page through the swipe deck, optionally filtered by gender
// @Tags Catalog
// @Produce json
// @Param skip query int false "Offset into the deck" default(0)
// @Param limit query int false "Page size" default(20)
// @Param gender query string false "male, female, or empty for the combined deck"
// @Success 200 {array} object{id=string,name=string,image_url=string,tags=[]string,style_category=string,gender=string}
// @Router /api/outfits [get]
func (h *CatalogHandler) ListOutfitsDoc() {}

// GetOutfit godoc
// @Summary Get a curated outfit
// @Description Get one outfit by id
// @Tags Catalog
// @Produce json
// @Param outfit_id path string true "Outfit ID"
// @Success 200 {object} object{id=string,name=string,image_url=string,items=[]object{type=string,name=string,color=string}}
// @Failure 404 {object} object{error=string}
// @Router /api/outfits/{outfit_id} [get]
func (h *CatalogHandler) GetOutfitDoc() {}

// ListProducts godoc
// @Summary List shoppable products
// @Description Product recommendations within a price range
// @Tags Catalog
// @Produce json
// @Param min_price query int false "Minimum price" default(0)
// @Param max_price query int false "Maximum price" default(100000)
// @Success 200 {array} object{id=string,name=string,brand=string,price=int,match_score=number}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}
