package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/testutil"
)

func setupStoreInfoService(t *testing.T) (*StoreInfoService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	userRepo := repository.NewUserRepository(db)
	cashSvc := NewCashService(repository.NewCashRepository(db), userRepo, nil)
	cfg := &config.Config{
		StoreInfo: config.StoreInfoConfig{ExtraEntryCost: 500},
	}

	return NewStoreInfoService(repository.NewStoreInfoRepository(db), cashSvc, cfg), db
}

func TestStoreInfoService_Create_FirstIsFree(t *testing.T) {
	svc, db := setupStoreInfoService(t)
	user := testutil.TestUser(t, db, testutil.WithAiCash(1000))

	created, err := svc.Create(user.ID, &dto.StoreInfoRequest{
		StoreName:   "행복카페",
		ProductName: "아메리카노",
	})
	require.NoError(t, err)
	assert.Zero(t, created.Charged)
	assert.Equal(t, 1000, created.AiCash)
}

func TestStoreInfoService_Create_SecondCharges(t *testing.T) {
	svc, db := setupStoreInfoService(t)
	user := testutil.TestUser(t, db, testutil.WithAiCash(1000))

	_, err := svc.Create(user.ID, &dto.StoreInfoRequest{StoreName: "첫 매장"})
	require.NoError(t, err)

	created, err := svc.Create(user.ID, &dto.StoreInfoRequest{StoreName: "두 번째 매장"})
	require.NoError(t, err)
	assert.Equal(t, 500, created.Charged)
	assert.Equal(t, 500, created.AiCash)
}

func TestStoreInfoService_Create_SecondInsufficientCash(t *testing.T) {
	svc, db := setupStoreInfoService(t)
	user := testutil.TestUser(t, db, testutil.WithAiCash(100))

	_, err := svc.Create(user.ID, &dto.StoreInfoRequest{StoreName: "첫 매장"})
	require.NoError(t, err)

	_, err = svc.Create(user.ID, &dto.StoreInfoRequest{StoreName: "두 번째 매장"})
	assert.ErrorIs(t, err, ErrInsufficientCash)

	// 차감 실패 시 매장 정보도 만들어지지 않는다
	infos, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestStoreInfoService_Get_OwnerOnly(t *testing.T) {
	svc, db := setupStoreInfoService(t)
	owner := testutil.TestUser(t, db)
	other := testutil.TestUser(t, db)

	info := testutil.TestStoreInfo(t, db, owner.ID)

	found, err := svc.Get(owner.ID, info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.StoreName, found.StoreName)

	_, err = svc.Get(other.ID, info.ID)
	assert.ErrorIs(t, err, ErrStoreInfoPermission)
}

func TestStoreInfoService_Get_NotFound(t *testing.T) {
	svc, db := setupStoreInfoService(t)
	user := testutil.TestUser(t, db)

	_, err := svc.Get(user.ID, 99999)
	assert.ErrorIs(t, err, ErrStoreInfoNotFound)
}

func TestStoreInfoService_UpdateAndDelete(t *testing.T) {
	svc, db := setupStoreInfoService(t)
	user := testutil.TestUser(t, db)

	info := testutil.TestStoreInfo(t, db, user.ID)

	updated, err := svc.Update(user.ID, info.ID, &dto.StoreInfoRequest{
		StoreName:   "새 이름",
		ProductName: "라떼",
	})
	require.NoError(t, err)
	assert.Equal(t, "새 이름", updated.StoreName)

	require.NoError(t, svc.Delete(user.ID, info.ID))

	_, err = svc.Get(user.ID, info.ID)
	assert.ErrorIs(t, err, ErrStoreInfoNotFound)
}
