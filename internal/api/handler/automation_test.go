package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/service"
	"github.com/geokjeongma/ai-server/internal/testutil"
)

func setupAutomationHandler(t *testing.T) (*AutomationHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	cfg := &config.Config{
		Automation: config.AutomationConfig{TotalStages: 2, CompletionReward: 2000},
	}

	userRepo := repository.NewUserRepository(db)
	cashSvc := service.NewCashService(repository.NewCashRepository(db), userRepo, nil)
	automationSvc := service.NewAutomationService(
		repository.NewAutomationRepository(db),
		repository.NewToolRepository(db),
		cashSvc,
		cfg,
	)

	return NewAutomationHandler(automationSvc), db
}

func automationTestRouter(h *AutomationHandler, userID int64) *gin.Engine {
	router := gin.New()
	router.Use(mockAuth(userID))
	router.GET("/automation", h.ListAll)
	router.GET("/automation/:toolId/progress", h.Get)
	router.POST("/automation/:toolId/progress", h.Advance)
	return router
}

func TestAutomationHandler_Get_Default(t *testing.T) {
	handler, db := setupAutomationHandler(t)

	user := testutil.TestUser(t, db)
	testutil.TestTool(t, db)

	router := automationTestRouter(handler, user.ID)

	req := httptest.NewRequest("GET", "/automation/1/progress", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	result := parseJSON(t, w)
	assert.Equal(t, float64(0), result["stage"])
	assert.Equal(t, float64(2), result["total_stages"])
	assert.Equal(t, false, result["completed"])
}

func TestAutomationHandler_Advance_ToCompletion(t *testing.T) {
	handler, db := setupAutomationHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(0))
	testutil.TestTool(t, db)

	router := automationTestRouter(handler, user.ID)

	first := doJSON(router, "POST", "/automation/1/progress", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, float64(1), parseJSON(t, first)["stage"])

	second := doJSON(router, "POST", "/automation/1/progress", nil)
	require.Equal(t, http.StatusOK, second.Code)

	result := parseJSON(t, second)
	assert.Equal(t, true, result["completed"])
	assert.Equal(t, float64(2000), result["reward"])

	// 완료 이후 추가 진행은 409
	third := doJSON(router, "POST", "/automation/1/progress", nil)
	assert.Equal(t, http.StatusConflict, third.Code)
}

func TestAutomationHandler_UnknownTool(t *testing.T) {
	handler, db := setupAutomationHandler(t)

	user := testutil.TestUser(t, db)

	router := automationTestRouter(handler, user.ID)

	w := doJSON(router, "POST", "/automation/99/progress", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
