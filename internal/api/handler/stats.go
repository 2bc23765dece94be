package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Get 서비스 전체 통계. 짧은 TTL 의 redis 캐시를 탄다.
// GET /api/stats
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.statsService.Get(c.Request.Context())
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, stats)
}
