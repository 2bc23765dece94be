package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type CashHandler struct {
	cashService *service.CashService
}

func NewCashHandler(cashService *service.CashService) *CashHandler {
	return &CashHandler{
		cashService: cashService,
	}
}

// ownUserID 경로의 :id 가 토큰 사용자 본인인지 확인한다
func ownUserID(c *gin.Context) (int64, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user id")
		return 0, false
	}

	userID, _ := middleware.GetUserID(c)
	if id != userID {
		response.Forbidden(c, "Cannot access another user's AI cash")
		return 0, false
	}
	return id, true
}

// Balance 잔액 조회
// GET /api/users/:id/ai-cash
func (h *CashHandler) Balance(c *gin.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	balance, err := h.cashService.GetBalance(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, balance)
}

// Transactions 원장 내역 조회 (최신순)
// GET /api/users/:id/ai-cash/transactions
func (h *CashHandler) Transactions(c *gin.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	items, total, err := h.cashService.ListTransactions(userID, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OKPage(c, total, page, pageSize, items)
}

// Charge AI캐시 충전
// POST /api/users/:id/ai-cash/charge
func (h *CashHandler) Charge(c *gin.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	var req dto.CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	balance, err := h.cashService.Charge(userID, &req)
	if err != nil {
		h.writeCashError(c, err)
		return
	}

	response.OK(c, balance)
}

// Spend AI캐시 차감
// POST /api/users/:id/ai-cash/spend
func (h *CashHandler) Spend(c *gin.Context) {
	userID, ok := ownUserID(c)
	if !ok {
		return
	}

	var req dto.CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	balance, err := h.cashService.Spend(userID, &req)
	if err != nil {
		h.writeCashError(c, err)
		return
	}

	response.OK(c, balance)
}

func (h *CashHandler) writeCashError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInsufficientCash):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrDuplicateRequest):
		response.Conflict(c, err.Error())
	default:
		response.ServerError(c, "")
	}
}
