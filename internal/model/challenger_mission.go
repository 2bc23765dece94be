package model

import (
	"time"
)

// ChallengerMission 7일 챌린저 미션. (user_id, day) 당 한 건.
type ChallengerMission struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	UserID       int64      `gorm:"not null;uniqueIndex:idx_user_day" json:"user_id"`
	Day          int        `gorm:"not null;uniqueIndex:idx_user_day" json:"day"` // 1..7
	Title        string     `gorm:"size:100;not null" json:"title"`
	RewardAmount int        `gorm:"not null" json:"reward_amount"`
	Completed    bool       `gorm:"default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (ChallengerMission) TableName() string {
	return "challenger_missions"
}
