package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parseError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	var body ErrorBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	return body
}

func TestOK(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		OK(c, gin.H{"key": "value"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, "value", data["key"])
}

func TestOKPage(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		items := []string{"item1", "item2", "item3"}
		OKPage(c, 100, 1, 10, items)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.Equal(t, float64(100), data["total"])
	assert.Equal(t, float64(1), data["page"])
	assert.Equal(t, float64(10), data["page_size"])

	items, ok := data["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 3)
}

func TestErrorShape(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		Error(c, http.StatusNotFound, "User not found")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", parseError(t, w).Error)
}

func TestHelpers_StatusAndDefaultMessage(t *testing.T) {
	tests := []struct {
		name        string
		fn          func(c *gin.Context)
		wantStatus  int
		wantMessage string
	}{
		{"bad request default", func(c *gin.Context) { BadRequest(c, "") }, http.StatusBadRequest, "Invalid request"},
		{"bad request custom", func(c *gin.Context) { BadRequest(c, "amount must be positive") }, http.StatusBadRequest, "amount must be positive"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, "Authentication required"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "") }, http.StatusForbidden, "Permission denied"},
		{"not found", func(c *gin.Context) { NotFound(c, "Tool not found") }, http.StatusNotFound, "Tool not found"},
		{"conflict", func(c *gin.Context) { Conflict(c, "") }, http.StatusConflict, "Duplicate request"},
		{"server error", func(c *gin.Context) { ServerError(c, "") }, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/test", tt.fn)

			req := httptest.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMessage, parseError(t, w).Error)
		})
	}
}
