package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geokjeongma/ai-server/internal/testutil"
)

func TestFavoriteRepository_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFavoriteRepository(db)
	user := testutil.TestUser(t, db)
	tool := testutil.TestTool(t, db)

	testutil.TestFavorite(t, db, user.ID, tool.ID)

	favs, err := repo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, tool.ID, favs[0].ToolID)
}

func TestFavoriteRepository_DuplicatesAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFavoriteRepository(db)
	user := testutil.TestUser(t, db)
	tool := testutil.TestTool(t, db)

	testutil.TestFavorite(t, db, user.ID, tool.ID)
	testutil.TestFavorite(t, db, user.ID, tool.ID)

	count, err := repo.CountByUser(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestFavoriteRepository_DeleteOne_RemovesSingleRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFavoriteRepository(db)
	user := testutil.TestUser(t, db)
	tool := testutil.TestTool(t, db)

	testutil.TestFavorite(t, db, user.ID, tool.ID)
	testutil.TestFavorite(t, db, user.ID, tool.ID)

	deleted, err := repo.DeleteOne(user.ID, tool.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// 중복 행 중 한 건만 지워진다
	count, err := repo.CountByUser(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestFavoriteRepository_DeleteOne_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFavoriteRepository(db)
	user := testutil.TestUser(t, db)

	deleted, err := repo.DeleteOne(user.ID, 99999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFavoriteRepository_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewFavoriteRepository(db)
	user := testutil.TestUser(t, db)
	tool := testutil.TestTool(t, db)

	exists, err := repo.Exists(user.ID, tool.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	testutil.TestFavorite(t, db, user.ID, tool.ID)

	exists, err = repo.Exists(user.ID, tool.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
