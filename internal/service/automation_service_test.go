package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/testutil"
)

func setupAutomationService(t *testing.T) (*AutomationService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	userRepo := repository.NewUserRepository(db)
	cashSvc := NewCashService(repository.NewCashRepository(db), userRepo, nil)
	cfg := &config.Config{
		Automation: config.AutomationConfig{TotalStages: 3, CompletionReward: 2000},
	}

	return NewAutomationService(repository.NewAutomationRepository(db), repository.NewToolRepository(db), cashSvc, cfg), db
}

func TestAutomationService_Get_BeforeStart(t *testing.T) {
	svc, db := setupAutomationService(t)
	user := testutil.TestUser(t, db)
	tool := testutil.TestTool(t, db)

	info, err := svc.Get(user.ID, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, info.Stage)
	assert.Equal(t, 3, info.TotalStages)
	assert.False(t, info.Completed)
}

func TestAutomationService_Advance(t *testing.T) {
	svc, db := setupAutomationService(t)
	user := testutil.TestUser(t, db, testutil.WithAiCash(0))
	tool := testutil.TestTool(t, db)

	info, err := svc.Advance(user.ID, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Stage)
	assert.Equal(t, 33, info.ProgressPercent)
	assert.False(t, info.Completed)
	assert.Zero(t, info.Reward)

	_, err = svc.Advance(user.ID, tool.ID)
	require.NoError(t, err)

	// 마지막 단계에서 완료 보상이 지급된다
	info, err = svc.Advance(user.ID, tool.ID)
	require.NoError(t, err)
	assert.True(t, info.Completed)
	assert.Equal(t, 2000, info.Reward)

	balance, err := svc.cashSvc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000, balance.AiCash)
}

func TestAutomationService_Advance_AfterCompletion(t *testing.T) {
	svc, db := setupAutomationService(t)
	user := testutil.TestUser(t, db, testutil.WithAiCash(0))
	tool := testutil.TestTool(t, db)

	for i := 0; i < 3; i++ {
		_, err := svc.Advance(user.ID, tool.ID)
		require.NoError(t, err)
	}

	// 완료 후 추가 진행은 거부되고 보상도 중복 지급되지 않는다
	_, err := svc.Advance(user.ID, tool.ID)
	assert.ErrorIs(t, err, ErrAutomationDone)

	balance, err := svc.cashSvc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000, balance.AiCash)
}

func TestAutomationService_Advance_UnknownTool(t *testing.T) {
	svc, db := setupAutomationService(t)
	user := testutil.TestUser(t, db)

	_, err := svc.Advance(user.ID, 99999)
	assert.ErrorIs(t, err, ErrToolNotFound)
}
