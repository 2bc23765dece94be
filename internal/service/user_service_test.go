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

func setupUserService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	return NewUserService(repository.NewUserRepository(db), nil, &config.Config{}), db
}

func TestUserService_GetProfile(t *testing.T) {
	svc, db := setupUserService(t)
	user := testutil.TestUser(t, db, testutil.WithAiCash(1500))

	info, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, info.Username)
	assert.Equal(t, 1500, info.AiCash)
	assert.NotEmpty(t, info.ReferralCode)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, _ := setupUserService(t)

	_, err := svc.GetProfile(99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, db := setupUserService(t)
	user := testutil.TestUser(t, db)

	newName := "newname"
	info, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "newname", info.Username)
}

func TestUserService_UpdateProfile_UsernameTaken(t *testing.T) {
	svc, db := setupUserService(t)
	testutil.TestUser(t, db, testutil.WithUsername("taken"))
	user := testutil.TestUser(t, db)

	taken := "taken"
	_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Username: &taken})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestUserService_ListUsers(t *testing.T) {
	svc, db := setupUserService(t)
	testutil.TestUser(t, db, testutil.WithUsername("alpha"))
	testutil.TestUser(t, db, testutil.WithUsername("beta"))

	users, total, err := svc.ListUsers(1, 10, "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, users, 2)
}
