package model

import (
	"time"
)

// Tool AI 콘텐츠 생성 도구 카탈로그 항목
type Tool struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;index;not null" json:"category"`
	Icon        string    `gorm:"size:100" json:"icon"`
	UsageCount  int       `gorm:"default:0;not null" json:"usage_count"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Tool) TableName() string {
	return "tools"
}

// Template 재사용 가능한 콘텐츠 템플릿
type Template struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;index;not null" json:"category"`
	Thumbnail   string    `gorm:"size:500" json:"thumbnail"`
	UsageCount  int       `gorm:"default:0;not null" json:"usage_count"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Template) TableName() string {
	return "templates"
}
