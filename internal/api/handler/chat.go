package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Send AI 비서에게 메시지 전송
// POST /api/chat
func (h *ChatHandler) Send(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.chatService.Send(userID, &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, item)
}

// History 대화 내역 조회 (오래된 순)
// GET /api/chat/:id
func (h *ChatHandler) History(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user id")
		return
	}

	userID, _ := middleware.GetUserID(c)
	if id != userID {
		response.Forbidden(c, "Cannot access another user's chat history")
		return
	}

	page, pageSize := pageParams(c)
	items, total, err := h.chatService.History(userID, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OKPage(c, total, page, pageSize, items)
}
