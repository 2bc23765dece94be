package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type AutomationHandler struct {
	automationService *service.AutomationService
}

func NewAutomationHandler(automationService *service.AutomationService) *AutomationHandler {
	return &AutomationHandler{
		automationService: automationService,
	}
}

// Get 자동화 설정 진행률 조회
// GET /api/automation/:toolId/progress
func (h *AutomationHandler) Get(c *gin.Context) {
	toolID, ok := pathID(c, "toolId")
	if !ok {
		response.BadRequest(c, "Invalid tool id")
		return
	}

	userID, _ := middleware.GetUserID(c)

	info, err := h.automationService.Get(userID, toolID)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, info)
}

// Advance 자동화 설정을 한 단계 진행. 마지막 단계 완료 시 1회성 보상 지급.
// POST /api/automation/:toolId/progress
func (h *AutomationHandler) Advance(c *gin.Context) {
	toolID, ok := pathID(c, "toolId")
	if !ok {
		response.BadRequest(c, "Invalid tool id")
		return
	}

	userID, _ := middleware.GetUserID(c)

	info, err := h.automationService.Advance(userID, toolID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrToolNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrAutomationDone):
			response.Conflict(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, info)
}

// ListAll 내 전체 자동화 진행 현황
// GET /api/automation
func (h *AutomationHandler) ListAll(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	items, err := h.automationService.ListByUser(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"progress": items})
}
