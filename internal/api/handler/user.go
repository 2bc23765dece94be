package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Get 공개 사용자 조회
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid user id")
		return
	}

	info, err := h.userService.GetProfile(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	// 공개 조회에서는 이메일 등 민감 필드를 내리지 않는다
	info.Email = ""
	info.EmailVerified = false
	info.ReferralCode = ""

	response.OK(c, info)
}

// GetProfile 내 프로필 조회
// GET /api/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	info, err := h.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, info)
}

// UpdateProfile 내 프로필 수정
// PUT /api/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	info, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrUsernameExists):
			response.Conflict(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, info)
}

// UploadAvatar 아바타 업로드
// POST /api/user/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "Missing avatar file")
		return
	}
	defer file.Close()

	// 5MB 제한
	if header.Size > 5*1024*1024 {
		response.BadRequest(c, "Avatar file too large")
		return
	}

	avatarURL, err := h.userService.UploadAvatar(userID, file, header.Filename)
	if err != nil {
		response.ServerError(c, "Failed to upload avatar")
		return
	}

	response.OK(c, gin.H{"avatar_url": avatarURL})
}
