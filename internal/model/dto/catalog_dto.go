package dto

// CreateToolRequest 도구 등록 요청 (관리자)
type CreateToolRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,max=50"`
	Icon        string `json:"icon" binding:"max=100"`
}

// UpdateToolRequest 도구 수정 요청 (관리자)
type UpdateToolRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=50"`
	Icon        *string `json:"icon,omitempty" binding:"omitempty,max=100"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CreateTemplateRequest 템플릿 등록 요청 (관리자)
type CreateTemplateRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,max=50"`
	Thumbnail   string `json:"thumbnail" binding:"max=500"`
}

// UpdateTemplateRequest 템플릿 수정 요청 (관리자)
type UpdateTemplateRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=50"`
	Thumbnail   *string `json:"thumbnail,omitempty" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// UsageResponse 사용 횟수 보고 응답
type UsageResponse struct {
	Success    bool `json:"success"`
	UsageCount int  `json:"usage_count"`
}
