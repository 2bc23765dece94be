package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/testutil"
)

func setupFavoriteService(t *testing.T) (*FavoriteService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	return NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewToolRepository(db)), db
}

func TestFavoriteService_AddAndList(t *testing.T) {
	svc, db := setupFavoriteService(t)
	user := testutil.TestUser(t, db)
	tool := testutil.TestTool(t, db, testutil.WithToolName("블로그 글쓰기"))

	require.NoError(t, svc.Add(user.ID, tool.ID))

	items, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, tool.ID, items[0].ToolID)
	assert.Equal(t, "블로그 글쓰기", items[0].ToolName)
}

func TestFavoriteService_Add_UnknownTool(t *testing.T) {
	svc, db := setupFavoriteService(t)
	user := testutil.TestUser(t, db)

	err := svc.Add(user.ID, 99999)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestFavoriteService_Add_DuplicatesAllowed(t *testing.T) {
	svc, db := setupFavoriteService(t)
	user := testutil.TestUser(t, db)
	tool := testutil.TestTool(t, db)

	require.NoError(t, svc.Add(user.ID, tool.ID))
	require.NoError(t, svc.Add(user.ID, tool.ID))

	items, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFavoriteService_Remove_OneAtATime(t *testing.T) {
	svc, db := setupFavoriteService(t)
	user := testutil.TestUser(t, db)
	tool := testutil.TestTool(t, db)

	require.NoError(t, svc.Add(user.ID, tool.ID))
	require.NoError(t, svc.Add(user.ID, tool.ID))

	require.NoError(t, svc.Remove(user.ID, tool.ID))

	items, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, svc.Remove(user.ID, tool.ID))

	err = svc.Remove(user.ID, tool.ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}
