package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/service"
	"github.com/geokjeongma/ai-server/internal/testutil"
)

func setupStoreInfoHandler(t *testing.T) (*StoreInfoHandler, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	cfg := &config.Config{
		StoreInfo: config.StoreInfoConfig{ExtraEntryCost: 500},
	}

	userRepo := repository.NewUserRepository(db)
	cashSvc := service.NewCashService(repository.NewCashRepository(db), userRepo, nil)
	storeInfoSvc := service.NewStoreInfoService(repository.NewStoreInfoRepository(db), cashSvc, cfg)

	return NewStoreInfoHandler(storeInfoSvc), db
}

func storeInfoTestRouter(h *StoreInfoHandler, userID int64) *gin.Engine {
	router := gin.New()
	router.Use(mockAuth(userID))
	router.GET("/store-info", h.List)
	router.POST("/store-info", h.Create)
	router.PUT("/store-info/:id", h.Update)
	router.DELETE("/store-info/:id", h.Delete)
	return router
}

func TestStoreInfoHandler_Create_FirstFree(t *testing.T) {
	handler, db := setupStoreInfoHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(1000))

	router := storeInfoTestRouter(handler, user.ID)

	w := doJSON(router, "POST", "/store-info", dto.StoreInfoRequest{StoreName: "우리집 돈까스"})
	require.Equal(t, http.StatusOK, w.Code)

	result := parseJSON(t, w)
	assert.Equal(t, float64(0), result["charged"])
	assert.Equal(t, float64(1000), result["ai_cash"])
}

func TestStoreInfoHandler_Create_SecondCharged(t *testing.T) {
	handler, db := setupStoreInfoHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(1000))

	router := storeInfoTestRouter(handler, user.ID)

	require.Equal(t, http.StatusOK, doJSON(router, "POST", "/store-info", dto.StoreInfoRequest{StoreName: "1호점"}).Code)

	w := doJSON(router, "POST", "/store-info", dto.StoreInfoRequest{StoreName: "2호점"})
	require.Equal(t, http.StatusOK, w.Code)

	result := parseJSON(t, w)
	assert.Equal(t, float64(500), result["charged"])
	assert.Equal(t, float64(500), result["ai_cash"])
}

func TestStoreInfoHandler_Create_Insufficient(t *testing.T) {
	handler, db := setupStoreInfoHandler(t)

	user := testutil.TestUser(t, db, testutil.WithAiCash(100))

	router := storeInfoTestRouter(handler, user.ID)

	require.Equal(t, http.StatusOK, doJSON(router, "POST", "/store-info", dto.StoreInfoRequest{StoreName: "1호점"}).Code)

	w := doJSON(router, "POST", "/store-info", dto.StoreInfoRequest{StoreName: "2호점"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Insufficient AI cash", parseErrorBody(t, w).Error)
}

func TestStoreInfoHandler_Update_NotOwner(t *testing.T) {
	handler, db := setupStoreInfoHandler(t)

	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)
	testutil.TestStoreInfo(t, db, owner.ID)

	router := storeInfoTestRouter(handler, other.ID)

	w := doJSON(router, "PUT", "/store-info/1", dto.StoreInfoRequest{StoreName: "탈취 시도"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStoreInfoHandler_Delete(t *testing.T) {
	handler, db := setupStoreInfoHandler(t)

	user := testutil.TestUser(t, db)
	testutil.TestStoreInfo(t, db, user.ID)

	router := storeInfoTestRouter(handler, user.ID)

	w := doJSON(router, "DELETE", "/store-info/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	again := doJSON(router, "DELETE", "/store-info/1", nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}
