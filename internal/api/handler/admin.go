package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

// AdminHandler 관리자 전용 API. AdminOnly 미들웨어 뒤에서만 동작한다.
type AdminHandler struct {
	catalogService *service.CatalogService
	userService    *service.UserService
	cashService    *service.CashService
	statsService   *service.StatsService
}

func NewAdminHandler(
	catalogService *service.CatalogService,
	userService *service.UserService,
	cashService *service.CashService,
	statsService *service.StatsService,
) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		userService:    userService,
		cashService:    cashService,
		statsService:   statsService,
	}
}

// CreateTool 도구 등록
// POST /api/admin/tools
func (h *AdminHandler) CreateTool(c *gin.Context) {
	var req dto.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tool, err := h.catalogService.CreateTool(&req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, tool)
}

// UpdateTool 도구 수정
// PATCH /api/admin/tools/:id
func (h *AdminHandler) UpdateTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid tool id")
		return
	}

	var req dto.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tool, err := h.catalogService.UpdateTool(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, tool)
}

// DeleteTool 도구 삭제
// DELETE /api/admin/tools/:id
func (h *AdminHandler) DeleteTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid tool id")
		return
	}

	if err := h.catalogService.DeleteTool(id); err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"success": true})
}

// CreateTemplate 템플릿 등록
// POST /api/admin/templates
func (h *AdminHandler) CreateTemplate(c *gin.Context) {
	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	template, err := h.catalogService.CreateTemplate(&req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, template)
}

// UpdateTemplate 템플릿 수정
// PATCH /api/admin/templates/:id
func (h *AdminHandler) UpdateTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid template id")
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	template, err := h.catalogService.UpdateTemplate(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, template)
}

// DeleteTemplate 템플릿 삭제
// DELETE /api/admin/templates/:id
func (h *AdminHandler) DeleteTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid template id")
		return
	}

	if err := h.catalogService.DeleteTemplate(id); err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"success": true})
}

// ListUsers 사용자 목록 조회
// GET /api/admin/users?search=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := pageParams(c)
	search := c.Query("search")

	items, total, err := h.userService.ListUsers(page, pageSize, search)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OKPage(c, total, page, pageSize, items)
}

// GrantCashRequest 관리자 수동 지급 요청
type GrantCashRequest struct {
	Amount      int    `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=200"`
}

// GrantCash 운영 보상 수동 지급
// POST /api/admin/users/:id/cash
func (h *AdminHandler) GrantCash(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user id")
		return
	}

	var req GrantCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	description := req.Description
	if description == "" {
		description = "운영 보상 지급"
	}

	balance, err := h.cashService.Reward(id, req.Amount, model.CashTypeReward, description)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"user_id": id, "ai_cash": balance})
}

// Stats 관리자 대시보드 통계
// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Get(c.Request.Context())
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, stats)
}
