package model

import (
	"time"
)

// 거래 유형
const (
	CashTypeCharge   = "charge"
	CashTypeSpend    = "spend"
	CashTypeReward   = "reward"
	CashTypeReferral = "referral"
)

// CashTransaction AI캐시 원장. 잔액이 바뀔 때마다 반드시 한 건 기록된다.
// (user_id, request_id) 유니크로 충전/차감 요청의 중복 제출을 막는다.
type CashTransaction struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	UserID       int64     `gorm:"not null;index;uniqueIndex:idx_user_request" json:"user_id"`
	Amount       int       `gorm:"not null" json:"amount"` // 부호 포함 (spend 는 음수)
	BalanceAfter int       `gorm:"not null" json:"balance_after"`
	Type         string    `gorm:"size:20;not null;index" json:"type"`
	Description  string    `gorm:"size:200" json:"description"`
	RequestID    *string   `gorm:"size:64;uniqueIndex:idx_user_request" json:"request_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (CashTransaction) TableName() string {
	return "cash_transactions"
}
