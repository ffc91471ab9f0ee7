package http

// AddItem godoc
// @Summary Add a wardrobe item
// @Description Store a garment; attributes default to Unknown/Solid when absent
// @Tags Wardrobe
// @Accept json
// @Produce json
// @Param request body object{user_id=string,image_base64=string,category=string,subcategory=string,colors=[]string,pattern=string,occasions=[]string,brand=string} true "Item data"
// @Success 201 {object} object{id=string,user_id=string,category=string,subcategory=string,colors=[]string,pattern=string,occasions=[]string}
// @Failure 400 {object} object{error=string}
// @Router /api/wardrobe [post]
func (h *WardrobeHandler) AddItemDoc() {}

// ListItems godoc
// @Summary List wardrobe items
// @Description List a user's wardrobe in insertion order, optionally filtered by category
// @Tags Wardrobe
// @Produce json
// @Param user_id path string true "User ID"
// @Param category query string false "Category filter; empty or All disables it"
// @Success 200 {array} object{id=string,category=string,subcategory=string,colors=[]string}
// @Failure 500 {object} object{error=string}
// @Router /api/wardrobe/{user_id} [get]
func (h *WardrobeHandler) ListItemsDoc() {}

// GetItem godoc
// @Summary Get a wardrobe item
// @Description Get one garment by id
// @Tags Wardrobe
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 200 {object} object{id=string,category=string,subcategory=string,colors=[]string}
// @Failure 404 {object} object{error=string}
// @Router /api/wardrobe/item/{item_id} [get]
func (h *WardrobeHandler) GetItemDoc() {}

// UpdateItem godoc
// @Summary Update a wardrobe item
// @Description Merge the provided fields into the item; omitted fields are untouched
// @Tags Wardrobe
// @Accept json
// @Produce json
// @Param item_id path string true "Item ID"
// @Param request body object{category=string,subcategory=string,colors=[]string,pattern=string,occasions=[]string,favorite=bool} true "Partial update"
// @Success 200 {object} object{id=string,category=string,subcategory=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/wardrobe/{item_id} [put]
func (h *WardrobeHandler) UpdateItemDoc() {}

// DeleteItem godoc
// @Summary Delete a wardrobe item
// @Description Remove one garment by id
// @Tags Wardrobe
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/wardrobe/{item_id} [delete]
func (h *WardrobeHandler) DeleteItemDoc() {}

// MarkWorn godoc
// @Summary Mark an item as worn
// @Description Increment the wear counter and stamp the last worn time
// @Tags Wardrobe
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 200 {object} object{id=string,times_worn=int,last_worn=string}
// @Failure 404 {object} object{error=string}
// @Router /api/wardrobe/{item_id}/worn [post]
func (h *WardrobeHandler) MarkWornDoc() {}
