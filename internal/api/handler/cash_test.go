package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/service"
	"github.com/geokjeongma/ai-server/internal/testutil"
)

func setupCashHandler(t *testing.T) (*CashHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	userRepo := repository.NewUserRepository(db)
	cashSvc := service.NewCashService(repository.NewCashRepository(db), userRepo, nil)

	return NewCashHandler(cashSvc), db
}

func cashTestRouter(h *CashHandler, userID int64) *gin.Engine {
	router := gin.New()
	router.Use(mockAuth(userID))
	router.GET("/users/:id/ai-cash", h.Balance)
	router.GET("/users/:id/ai-cash/transactions", h.Transactions)
	router.POST("/users/:id/ai-cash/charge", h.Charge)
	router.POST("/users/:id/ai-cash/spend", h.Spend)
	return router
}

func TestCashHandler_Balance(t *testing.T) {
	handler, db := setupCashHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(700))

	router := cashTestRouter(handler, user.ID)

	req := httptest.NewRequest("GET", "/users/1/ai-cash", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(700), parseJSON(t, w)["ai_cash"])
}

func TestCashHandler_Balance_OtherUser(t *testing.T) {
	handler, db := setupCashHandler(t)

	user := testutil.TestUser(t, db)

	router := cashTestRouter(handler, user.ID)

	req := httptest.NewRequest("GET", "/users/2/ai-cash", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCashHandler_ChargeAndSpend(t *testing.T) {
	handler, db := setupCashHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(1000))

	router := cashTestRouter(handler, user.ID)

	charge := doJSON(router, "POST", "/users/1/ai-cash/charge", dto.CashRequest{Amount: 500})
	require.Equal(t, http.StatusOK, charge.Code)
	assert.Equal(t, float64(1500), parseJSON(t, charge)["ai_cash"])

	spend := doJSON(router, "POST", "/users/1/ai-cash/spend", dto.CashRequest{Amount: 300})
	require.Equal(t, http.StatusOK, spend.Code)
	assert.Equal(t, float64(1200), parseJSON(t, spend)["ai_cash"])
}

func TestCashHandler_Spend_Insufficient(t *testing.T) {
	handler, db := setupCashHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(100))

	router := cashTestRouter(handler, user.ID)

	w := doJSON(router, "POST", "/users/1/ai-cash/spend", dto.CashRequest{Amount: 500})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Insufficient AI cash", parseErrorBody(t, w).Error)
}

func TestCashHandler_Charge_DuplicateRequest(t *testing.T) {
	handler, db := setupCashHandler(t)

	user := testutil.TestUser(t, db)

	router := cashTestRouter(handler, user.ID)

	requestID := "order-123"
	first := doJSON(router, "POST", "/users/1/ai-cash/charge", dto.CashRequest{Amount: 500, RequestID: &requestID})
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(router, "POST", "/users/1/ai-cash/charge", dto.CashRequest{Amount: 500, RequestID: &requestID})
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestCashHandler_Transactions(t *testing.T) {
	handler, db := setupCashHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(1000))

	router := cashTestRouter(handler, user.ID)

	require.Equal(t, http.StatusOK, doJSON(router, "POST", "/users/1/ai-cash/charge", dto.CashRequest{Amount: 500}).Code)
	require.Equal(t, http.StatusOK, doJSON(router, "POST", "/users/1/ai-cash/spend", dto.CashRequest{Amount: 200}).Code)

	req := httptest.NewRequest("GET", "/users/1/ai-cash/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	result := parseJSON(t, w)
	assert.Equal(t, float64(2), result["total"])

	items, ok := result["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 2)

	// 최신순: 차감이 먼저
	newest := items[0].(map[string]interface{})
	assert.Equal(t, float64(-200), newest["amount"])
	assert.Equal(t, float64(1300), newest["balance_after"])
}
