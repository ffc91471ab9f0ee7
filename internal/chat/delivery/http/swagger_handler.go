package http

// Chat godoc
// @Summary Send a chat message
// @Description One turn of the stylist conversation. Model failures still return 200 with success=false and a fallback response.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object{user_id=string,message=string} true "Chat turn"
// @Success 200 {object} object{success=bool,response=string,timestamp=string,message_count=int}
// @Failure 400 {object} object{error=string}
// @Router /api/chat [post]
func (h *ChatHandler) ChatDoc() {}

// OutfitAdvice godoc
// @Summary Ask for outfit advice
// @Description Phrase an occasion request as a chat turn
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body object{user_id=string,occasion=string,preferences=string} true "Advice request"
// @Success 200 {object} object{success=bool,response=string,timestamp=string,message_count=int}
// @Failure 400 {object} object{error=string}
// @Router /api/chat/outfit-advice [post]
func (h *ChatHandler) OutfitAdviceDoc() {}

// GetHistory godoc
// @Summary Get chat history
// @Description Return the stored conversation, at most the last 20 messages
// @Tags Chat
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} object{user_id=string,messages=[]object{role=string,content=string},count=int}
// @Failure 400 {object} object{error=string}
// @Router /api/chat/history/{user_id} [get]
func (h *ChatHandler) GetHistoryDoc() {}

// ClearHistory godoc
// @Summary Clear chat history
// @Description Drop the stored conversation for a user
// @Tags Chat
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /api/chat/history/{user_id} [delete]
func (h *ChatHandler) ClearHistoryDoc() {}
