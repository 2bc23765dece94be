package model

import (
	"time"
)

// Favorite 도구 즐겨찾기. (user_id, tool_id) 중복을 막지 않는다 —
// 기존 서비스와 동일한 동작을 유지하고 Remove 가 정확히 한 건만 지운다.
type Favorite struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	ToolID    int64     `gorm:"not null;index" json:"tool_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
