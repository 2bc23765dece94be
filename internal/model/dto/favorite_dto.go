package dto

// FavoriteRequest 즐겨찾기 추가/삭제 요청
type FavoriteRequest struct {
	ToolID int64 `json:"tool_id" binding:"required"`
}

// FavoriteItem 즐겨찾기 목록 한 건 (도구 정보 포함)
type FavoriteItem struct {
	ID        int64  `json:"id"`
	ToolID    int64  `json:"tool_id"`
	ToolName  string `json:"tool_name"`
	Category  string `json:"category"`
	Icon      string `json:"icon"`
	CreatedAt string `json:"created_at"`
}
