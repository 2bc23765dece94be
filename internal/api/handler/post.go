package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/api/middleware"
	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type PostHandler struct {
	postService *service.PostService
	userService *service.UserService
}

func NewPostHandler(postService *service.PostService, userService *service.UserService) *PostHandler {
	return &PostHandler{
		postService: postService,
		userService: userService,
	}
}

// List 게시글 목록 (최신순)
// GET /api/posts?category=&search=&page=
func (h *PostHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	category := c.Query("category")
	search := c.Query("search")

	items, total, err := h.postService.List(category, search, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OKPage(c, total, page, pageSize, items)
}

// Get 게시글 상세. 조회수가 1 올라간다.
// GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid post id")
		return
	}

	item, err := h.postService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, item)
}

// Create 게시글 작성
// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.postService.Create(userID, &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, item)
}

// Update 게시글 수정 (작성자만)
// PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid post id")
		return
	}

	userID, _ := middleware.GetUserID(c)

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.postService.Update(userID, id, &req)
	if err != nil {
		h.writePostError(c, err)
		return
	}

	response.OK(c, item)
}

// Delete 게시글 삭제 (작성자 또는 관리자)
// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid post id")
		return
	}

	userID, _ := middleware.GetUserID(c)
	isAdmin := h.isAdmin(userID)

	if err := h.postService.Delete(userID, id, isAdmin); err != nil {
		h.writePostError(c, err)
		return
	}

	response.OK(c, gin.H{"success": true})
}

func (h *PostHandler) isAdmin(userID int64) bool {
	info, err := h.userService.GetProfile(userID)
	if err != nil {
		return false
	}
	return info.Role == model.RoleAdmin
}

func (h *PostHandler) writePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPostPermission):
		response.Forbidden(c, err.Error())
	default:
		response.ServerError(c, "")
	}
}
