package model

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID                    int64      `gorm:"primaryKey" json:"id"`
	Username              string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email                 *string    `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	PasswordHash          *string    `gorm:"size:255" json:"-"`
	KakaoID               *string    `gorm:"column:kakao_id;size:100;uniqueIndex" json:"-"`
	AvatarURL             string     `gorm:"size:500" json:"avatar_url"`
	AiCash                int        `gorm:"column:ai_cash;default:0;not null" json:"ai_cash"`
	Role                  string     `gorm:"size:20;default:user;not null" json:"role"`
	ReferralCode          string     `gorm:"size:20;uniqueIndex;not null" json:"referral_code"`
	ReferredBy            *int64     `gorm:"index" json:"referred_by,omitempty"`
	EmailVerified         bool       `gorm:"default:false" json:"email_verified"`
	VerificationCode      *string    `gorm:"size:100" json:"-"`
	VerificationExpiresAt *time.Time `json:"-"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
