package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/oauth"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	stateStore  *oauth.StateStore
}

func NewAuthHandler(authService *service.AuthService, stateStore *oauth.StateStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		stateStore:  stateStore,
	}
}

// Register 회원 가입
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists),
			errors.Is(err, service.ErrUsernameExists):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrInvalidReferralCode):
			response.BadRequest(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, resp)
}

// Login 로그인
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials),
			errors.Is(err, service.ErrEmailNotVerified):
			response.Unauthorized(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, resp)
}

// VerifyEmail 이메일 인증 코드 확인
// POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.VerifyEmail(req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVerifyCode):
			response.BadRequest(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, resp)
}

// KakaoAuth 카카오 로그인 URL 발급
// GET /api/auth/kakao
func (h *AuthHandler) KakaoAuth(c *gin.Context) {
	redirectURI := c.DefaultQuery("redirect_uri", "/")

	state, err := h.stateStore.GenerateState(c.Request.Context(), redirectURI)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, gin.H{
		"auth_url": h.authService.GetKakaoAuthURL(state),
	})
}

// KakaoCallback 카카오 인가 코드 콜백
// GET /api/auth/kakao/callback?code=xxx&state=xxx
func (h *AuthHandler) KakaoCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		response.BadRequest(c, "Missing code or state")
		return
	}

	redirectURI, err := h.stateStore.ValidateState(c.Request.Context(), state)
	if err != nil {
		response.BadRequest(c, "Invalid or expired state")
		return
	}

	resp, err := h.authService.KakaoCallback(c.Request.Context(), code)
	if err != nil {
		response.ServerError(c, "Kakao login failed")
		return
	}

	response.OK(c, gin.H{
		"token":        resp.Token,
		"user":         resp.User,
		"redirect_uri": redirectURI,
	})
}
