package dto

// CreatePostRequest 게시글 작성 요청
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"max=50"`
}

// UpdatePostRequest 게시글 수정 요청
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty" binding:"omitempty,max=50"`
}

// PostItem 목록/상세 공용 게시글 응답
type PostItem struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Category  string `json:"category"`
	ViewCount int    `json:"view_count"`
	CreatedAt string `json:"created_at"`
}
