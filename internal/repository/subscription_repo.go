package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *SubscriptionRepository) GetByID(id int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("id = ?", id).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetActiveByUser 현재 유효한 구독 조회
func (r *SubscriptionRepository) GetActiveByUser(userID int64, now time.Time) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("user_id = ? AND status = ? AND expires_at > ?", userID, model.SubscriptionActive, now).
		Order("expires_at DESC").First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListByUser(userID int64) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&model.Subscription{}).Where("id = ?", id).Update("status", status).Error
}

// ExpireOverdue 만료 시각이 지난 활성 구독을 expired 로 전환하고 건수를 반환
func (r *SubscriptionRepository) ExpireOverdue(now time.Time) (int64, error) {
	res := r.db.Model(&model.Subscription{}).
		Where("status = ? AND expires_at <= ?", model.SubscriptionActive, now).
		Update("status", model.SubscriptionExpired)
	return res.RowsAffected, res.Error
}
