package model

import (
	"time"
)

// AutomationProgress 도구별 자동화 설정 진행 상태. (user_id, tool_id) 당 한 건.
type AutomationProgress struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"not null;uniqueIndex:idx_user_tool" json:"user_id"`
	ToolID      int64     `gorm:"not null;uniqueIndex:idx_user_tool" json:"tool_id"`
	Stage       int       `gorm:"default:0;not null" json:"stage"`
	TotalStages int       `gorm:"not null" json:"total_stages"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	RewardPaid  bool      `gorm:"default:false" json:"reward_paid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (AutomationProgress) TableName() string {
	return "automation_progress"
}
