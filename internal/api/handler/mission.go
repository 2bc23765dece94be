package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type MissionHandler struct {
	missionService *service.MissionService
}

func NewMissionHandler(missionService *service.MissionService) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

// List 7일 챌린지 미션 목록. 첫 조회 시 자동 시딩된다.
// GET /api/missions
func (h *MissionHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	list, err := h.missionService.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, list)
}

// Complete 미션 완료 처리 및 보상 지급
// POST /api/missions/:day/complete
func (h *MissionHandler) Complete(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		response.BadRequest(c, "Invalid mission day")
		return
	}

	userID, _ := middleware.GetUserID(c)

	result, err := h.missionService.Complete(userID, day)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissionNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrMissionAlreadyDone):
			response.Conflict(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, result)
}
