package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// List 즐겨찾기 목록
// GET /api/users/:id/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user id")
		return
	}

	userID, _ := middleware.GetUserID(c)
	if id != userID {
		response.Forbidden(c, "Cannot access another user's favorites")
		return
	}

	items, err := h.favoriteService.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"favorites": items})
}

// Add 즐겨찾기 추가. 중복 추가도 허용한다.
// POST /api/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.favoriteService.Add(userID, req.ToolID); err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"success": true})
}

// Remove 즐겨찾기 한 건 삭제
// DELETE /api/favorites
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.favoriteService.Remove(userID, req.ToolID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"success": true})
}
