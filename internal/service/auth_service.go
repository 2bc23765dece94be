package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/email"
	"github.com/geokjeongma/ai-server/internal/pkg/jwt"
	"github.com/geokjeongma/ai-server/internal/pkg/oauth"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var (
	ErrEmailExists         = errors.New("Email already registered")
	ErrUsernameExists      = errors.New("Username already taken")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrEmailNotVerified    = errors.New("Email not verified")
	ErrInvalidVerifyCode   = errors.New("Invalid or expired verification code")
	ErrInvalidReferralCode = errors.New("Invalid referral code")
)

type AuthService struct {
	userRepo   *repository.UserRepository
	cashSvc    *CashService
	emailSvc   *email.Service
	cfg        *config.Config
	kakaoOAuth *oauth.KakaoOAuth
}

func NewAuthService(userRepo *repository.UserRepository, cashSvc *CashService, emailSvc *email.Service, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cashSvc:  cashSvc,
		emailSvc: emailSvc,
		cfg:      cfg,
		kakaoOAuth: oauth.NewKakaoOAuth(
			cfg.OAuth.Kakao.ClientID,
			cfg.OAuth.Kakao.ClientSecret,
			cfg.OAuth.Kakao.RedirectURI,
		),
	}
}

// Register 회원 가입. 가입 보너스를 지급하고 추천인 코드가 있으면 추천인에게 보상한다.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	exists, err = s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	// 추천인 코드는 가입 전에 검증한다
	var referrer *model.User
	if req.ReferralCode != nil && *req.ReferralCode != "" {
		referrer, err = s.userRepo.GetByReferralCode(*req.ReferralCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidReferralCode
			}
			return nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	verifyCode, err := generateRandomCode(32)
	if err != nil {
		return nil, err
	}

	referralCode, err := s.newReferralCode()
	if err != nil {
		return nil, err
	}

	passwordStr := string(hashedPassword)
	expiresAt := time.Now().Add(24 * time.Hour)

	user := &model.User{
		Username:              req.Username,
		Email:                 &req.Email,
		PasswordHash:          &passwordStr,
		Role:                  model.RoleUser,
		ReferralCode:          referralCode,
		VerificationCode:      &verifyCode,
		VerificationExpiresAt: &expiresAt,
	}
	if referrer != nil {
		user.ReferredBy = &referrer.ID
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// 가입 보너스 지급 (원장 기록 포함)
	balance, err := s.cashSvc.Reward(user.ID, s.cfg.Cash.SignupBonus, model.CashTypeReward, "가입 보너스")
	if err != nil {
		return nil, err
	}

	// 추천인 보상
	if referrer != nil {
		desc := fmt.Sprintf("친구 추천 보상 (%s)", user.Username)
		if _, err := s.cashSvc.Reward(referrer.ID, s.cfg.Cash.ReferralReward, model.CashTypeReferral, desc); err != nil {
			log.Printf("Failed to pay referral reward to user %d: %v", referrer.ID, err)
		}
	}

	if s.cfg.Server.Mode == "debug" {
		// 개발 환경에서는 메일 발송 없이 바로 인증 처리
		user.EmailVerified = true
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
	} else if s.emailSvc != nil {
		if err := s.emailSvc.SendVerificationCode(req.Email, verifyCode); err != nil {
			log.Printf("Failed to send verification email to %s: %v", req.Email, err)
		}
	}

	return &dto.RegisterResponse{
		UserID:       user.ID,
		ReferralCode: user.ReferralCode,
		AiCash:       balance,
	}, nil
}

// Login 로그인
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 운영 환경에서는 이메일 인증을 강제한다
	if !user.EmailVerified && s.cfg.Server.Mode != "debug" {
		return nil, ErrEmailNotVerified
	}

	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  buildUserInfo(user),
	}, nil
}

// VerifyEmail 이메일 인증
func (s *AuthService) VerifyEmail(code string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByVerificationCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidVerifyCode
		}
		return nil, err
	}

	if user.VerificationExpiresAt == nil || time.Now().After(*user.VerificationExpiresAt) {
		return nil, ErrInvalidVerifyCode
	}

	user.EmailVerified = true
	user.VerificationCode = nil
	user.VerificationExpiresAt = nil
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendWelcome(*user.Email, user.Username); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", *user.Email, err)
		}
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  buildUserInfo(user),
	}, nil
}

// GetUserByID ID 로 사용자 조회
func (s *AuthService) GetUserByID(id int64) (*model.User, error) {
	return s.userRepo.GetByID(id)
}

// GetKakaoAuthURL 카카오 인증 URL
func (s *AuthService) GetKakaoAuthURL(state string) string {
	return s.kakaoOAuth.GetAuthURL(state)
}

// KakaoCallback 카카오 OAuth 콜백 처리. 첫 로그인이면 계정을 만들고 보너스를 지급한다.
func (s *AuthService) KakaoCallback(ctx context.Context, code string) (*dto.LoginResponse, error) {
	token, err := s.kakaoOAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	kakaoUser, err := s.kakaoOAuth.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get kakao user: %w", err)
	}

	user, err := s.userRepo.GetByKakaoID(kakaoUser.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if user == nil {
		referralCode, err := s.newReferralCode()
		if err != nil {
			return nil, err
		}

		username := kakaoUser.Nickname
		if username == "" {
			username = fmt.Sprintf("kakao_%s", kakaoUser.ID)
		}
		exists, _ := s.userRepo.ExistsByUsername(username)
		if exists {
			username = fmt.Sprintf("%s_%s", username, kakaoUser.ID)
		}

		user = &model.User{
			Username:      username,
			KakaoID:       &kakaoUser.ID,
			AvatarURL:     kakaoUser.AvatarURL,
			Role:          model.RoleUser,
			ReferralCode:  referralCode,
			EmailVerified: true, // OAuth 계정은 인증된 것으로 본다
		}
		if kakaoUser.Email != "" {
			user.Email = &kakaoUser.Email
		}

		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		balance, err := s.cashSvc.Reward(user.ID, s.cfg.Cash.KakaoSignupBonus, model.CashTypeReward, "카카오 가입 보너스")
		if err != nil {
			return nil, err
		}
		user.AiCash = balance
	}

	jwtToken, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: jwtToken,
		User:  buildUserInfo(user),
	}, nil
}

// newReferralCode 8자리 추천인 코드 생성. 충돌 시 재시도.
func (s *AuthService) newReferralCode() (string, error) {
	for i := 0; i < 5; i++ {
		code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
		exists, err := s.userRepo.ExistsByReferralCode(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("failed to generate referral code")
}

func buildUserInfo(user *model.User) *dto.UserInfo {
	info := &dto.UserInfo{
		ID:            user.ID,
		Username:      user.Username,
		AvatarURL:     user.AvatarURL,
		AiCash:        user.AiCash,
		Role:          user.Role,
		ReferralCode:  user.ReferralCode,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}

	if user.Email != nil {
		info.Email = *user.Email
	}

	return info
}

func generateRandomCode(length int) (string, error) {
	bytes := make([]byte, length/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
