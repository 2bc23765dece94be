package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 에러 응답 형식. 클라이언트 계약: {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}

// PageData 페이지네이션 응답
type PageData struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Items    interface{} `json:"items"`
}

// OK 200 성공 응답
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OKPage 페이지네이션 성공 응답
func OKPage(c *gin.Context, total int64, page, pageSize int, items interface{}) {
	c.JSON(http.StatusOK, PageData{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	})
}

// Error 상태코드 + 에러 메시지
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// BadRequest 400 요청 형식 오류
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 인증 실패
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 권한 없음
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Permission denied"
	}
	Error(c, http.StatusForbidden, message)
}

// NotFound 404 대상 없음
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(c, http.StatusNotFound, message)
}

// Conflict 409 중복
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Duplicate request"
	}
	Error(c, http.StatusConflict, message)
}

// ServerError 500 내부 오류
func ServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(c, http.StatusInternalServerError, message)
}
