package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/testutil"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireHours: 24},
		Cash: config.CashConfig{
			SignupBonus:      1000,
			KakaoSignupBonus: 100,
			ReferralReward:   5000,
		},
	}
}

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	userRepo := repository.NewUserRepository(db)
	cashSvc := NewCashService(repository.NewCashRepository(db), userRepo, nil)

	return NewAuthService(userRepo, cashSvc, nil, authTestConfig()), db
}

func TestAuthService_Register(t *testing.T) {
	svc, db := setupAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "sajangnim",
		Email:    "owner@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.UserID)
	assert.Len(t, resp.ReferralCode, 8)

	// 가입 보너스가 지급되고 원장에 기록된다
	assert.Equal(t, 1000, resp.AiCash)

	var tx model.CashTransaction
	require.NoError(t, db.Where("user_id = ?", resp.UserID).First(&tx).Error)
	assert.Equal(t, model.CashTypeReward, tx.Type)
	assert.Equal(t, 1000, tx.Amount)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, db := setupAuthService(t)

	testutil.TestUser(t, db, testutil.WithEmail("taken@example.com"))

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "newuser",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, db := setupAuthService(t)

	testutil.TestUser(t, db, testutil.WithUsername("taken"))

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "taken",
		Email:    "new@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestAuthService_Register_WithReferral(t *testing.T) {
	svc, db := setupAuthService(t)

	referrer := testutil.TestUser(t, db,
		testutil.WithAiCash(0),
		testutil.WithReferralCode("FRIEND01"))

	code := "FRIEND01"
	resp, err := svc.Register(&dto.RegisterRequest{
		Username:     "invited",
		Email:        "invited@example.com",
		Password:     "password123",
		ReferralCode: &code,
	})
	require.NoError(t, err)

	// 추천인에게 보상이 지급된다
	var updated model.User
	require.NoError(t, db.First(&updated, referrer.ID).Error)
	assert.Equal(t, 5000, updated.AiCash)

	// 피추천인에 추천인이 기록된다
	var newUser model.User
	require.NoError(t, db.First(&newUser, resp.UserID).Error)
	require.NotNil(t, newUser.ReferredBy)
	assert.Equal(t, referrer.ID, *newUser.ReferredBy)
}

func TestAuthService_Register_InvalidReferralCode(t *testing.T) {
	svc, _ := setupAuthService(t)

	code := "NOSUCH00"
	_, err := svc.Register(&dto.RegisterRequest{
		Username:     "invited",
		Email:        "invited@example.com",
		Password:     "password123",
		ReferralCode: &code,
	})
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "loginuser",
		Email:    "login@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{
		Email:    "login@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "loginuser", resp.User.Username)
	assert.Equal(t, 1000, resp.User.AiCash)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "loginuser",
		Email:    "login@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{
		Email:    "login@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_VerifyEmail_InvalidCode(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.VerifyEmail("no-such-code")
	assert.ErrorIs(t, err, ErrInvalidVerifyCode)
}
