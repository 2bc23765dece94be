package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// Purchase 구독 결제 (AI캐시 차감)
// POST /api/subscriptions
func (h *SubscriptionHandler) Purchase(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.PurchaseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	info, err := h.subscriptionService.Purchase(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlan):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrAlreadySubscribed),
			errors.Is(err, service.ErrDuplicateRequest):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrInsufficientCash):
			response.BadRequest(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, info)
}

// GetCurrent 현재 구독 상태 조회
// GET /api/subscriptions/me
func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	info, err := h.subscriptionService.GetCurrent(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSubscription) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, info)
}

// Cancel 구독 해지. 환불 없이 상태만 변경한다.
// DELETE /api/subscriptions/me
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.subscriptionService.Cancel(userID); err != nil {
		if errors.Is(err, service.ErrNoActiveSubscription) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{"success": true})
}
