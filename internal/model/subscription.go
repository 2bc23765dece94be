package model

import (
	"time"
)

const (
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

type Subscription struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Plan      string    `gorm:"size:20;not null" json:"plan"` // basic, pro
	Amount    int       `gorm:"not null" json:"amount"`       // 결제한 AI캐시
	StartedAt time.Time `gorm:"not null" json:"started_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Status    string    `gorm:"size:20;default:active;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
