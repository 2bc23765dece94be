package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type StoreInfoHandler struct {
	storeInfoService *service.StoreInfoService
}

func NewStoreInfoHandler(storeInfoService *service.StoreInfoService) *StoreInfoHandler {
	return &StoreInfoHandler{
		storeInfoService: storeInfoService,
	}
}

// List 내 매장 정보 목록
// GET /api/store-info
func (h *StoreInfoHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	items, err := h.storeInfoService.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"store_infos": items})
}

// Create 매장 정보 등록. 첫 건은 무료, 추가 등록은 AI캐시 차감.
// POST /api/store-info
func (h *StoreInfoHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.StoreInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.storeInfoService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientCash) {
			response.BadRequest(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, created)
}

// Update 매장 정보 수정 (본인만)
// PUT /api/store-info/:id
func (h *StoreInfoHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid store info id")
		return
	}

	userID, _ := middleware.GetUserID(c)

	var req dto.StoreInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	info, err := h.storeInfoService.Update(userID, id, &req)
	if err != nil {
		h.writeStoreInfoError(c, err)
		return
	}

	response.OK(c, info)
}

// Delete 매장 정보 삭제 (본인만)
// DELETE /api/store-info/:id
func (h *StoreInfoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid store info id")
		return
	}

	userID, _ := middleware.GetUserID(c)
	if err := h.storeInfoService.Delete(userID, id); err != nil {
		h.writeStoreInfoError(c, err)
		return
	}

	response.OK(c, gin.H{"success": true})
}

func (h *StoreInfoHandler) writeStoreInfoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStoreInfoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrStoreInfoPermission):
		response.Forbidden(c, err.Error())
	default:
		response.ServerError(c, "")
	}
}
