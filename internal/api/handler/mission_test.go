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

func setupMissionHandler(t *testing.T) (*MissionHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	cfg := &config.Config{
		Missions: config.MissionConfig{
			Days: []config.MissionDay{
				{Day: 1, Title: "매장 정보 등록하기", Reward: 500},
				{Day: 2, Title: "블로그 글 생성하기", Reward: 500},
			},
			StreakBonus: 3000,
		},
	}

	userRepo := repository.NewUserRepository(db)
	cashSvc := service.NewCashService(repository.NewCashRepository(db), userRepo, nil)
	missionSvc := service.NewMissionService(repository.NewMissionRepository(db), cashSvc, nil, cfg)

	return NewMissionHandler(missionSvc), db
}

func missionTestRouter(h *MissionHandler, userID int64) *gin.Engine {
	router := gin.New()
	router.Use(mockAuth(userID))
	router.GET("/missions", h.List)
	router.POST("/missions/:day/complete", h.Complete)
	return router
}

func TestMissionHandler_List_Seeds(t *testing.T) {
	handler, db := setupMissionHandler(t)

	user := testutil.TestUser(t, db)

	router := missionTestRouter(handler, user.ID)

	req := httptest.NewRequest("GET", "/missions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	result := parseJSON(t, w)
	missions, ok := result["missions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, missions, 2)
	assert.Equal(t, float64(0), result["completed_count"])
}

func TestMissionHandler_Complete(t *testing.T) {
	handler, db := setupMissionHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(0))

	router := missionTestRouter(handler, user.ID)

	// 시딩
	req := httptest.NewRequest("GET", "/missions", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := doJSON(router, "POST", "/missions/1/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	result := parseJSON(t, w)
	assert.Equal(t, float64(500), result["reward"])
	assert.Equal(t, float64(500), result["ai_cash"])

	// 중복 완료는 409
	again := doJSON(router, "POST", "/missions/1/complete", nil)
	assert.Equal(t, http.StatusConflict, again.Code)
}

func TestMissionHandler_Complete_UnknownDay(t *testing.T) {
	handler, db := setupMissionHandler(t)

	user := testutil.TestUser(t, db)

	router := missionTestRouter(handler, user.ID)

	req := httptest.NewRequest("GET", "/missions", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := doJSON(router, "POST", "/missions/9/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
