package dto

// ChatRequest 채팅 메시지 전송 요청
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// ChatMessageItem 채팅 내역 한 건
type ChatMessageItem struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response,omitempty"`
	CreatedAt string `json:"created_at"`
}
