package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var (
	ErrInvalidPlan          = errors.New("Invalid subscription plan")
	ErrAlreadySubscribed    = errors.New("Subscription already active")
	ErrNoActiveSubscription = errors.New("No active subscription")
)

// SubscriptionService AI캐시로 결제하는 구독을 관리한다
type SubscriptionService struct {
	subscriptionRepo *repository.SubscriptionRepository
	cashSvc          *CashService
	cfg              *config.Config
}

func NewSubscriptionService(subscriptionRepo *repository.SubscriptionRepository, cashSvc *CashService, cfg *config.Config) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		cashSvc:          cashSvc,
		cfg:              cfg,
	}
}

// Purchase 구독 결제. 플랜 가격만큼 AI캐시를 차감한다.
func (s *SubscriptionService) Purchase(userID int64, req *dto.PurchaseSubscriptionRequest) (*dto.SubscriptionInfo, error) {
	plan, ok := s.cfg.Subscription.Plans[req.Plan]
	if !ok {
		return nil, ErrInvalidPlan
	}

	now := time.Now().UTC()
	if _, err := s.subscriptionRepo.GetActiveByUser(userID, now); err == nil {
		return nil, ErrAlreadySubscribed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	desc := fmt.Sprintf("%s 구독 결제", req.Plan)
	if _, err := s.cashSvc.SpendFor(userID, plan.Price, desc, req.RequestID); err != nil {
		return nil, err
	}

	sub := &model.Subscription{
		UserID:    userID,
		Plan:      req.Plan,
		Amount:    plan.Price,
		StartedAt: now,
		ExpiresAt: now.AddDate(0, 0, plan.DurationDays),
		Status:    model.SubscriptionActive,
	}
	if err := s.subscriptionRepo.Create(sub); err != nil {
		return nil, err
	}

	return buildSubscriptionInfo(sub), nil
}

// GetCurrent 현재 구독 상태 조회
func (s *SubscriptionService) GetCurrent(userID int64) (*dto.SubscriptionInfo, error) {
	sub, err := s.subscriptionRepo.GetActiveByUser(userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSubscription
		}
		return nil, err
	}

	return buildSubscriptionInfo(sub), nil
}

// Cancel 구독 해지. 환불은 하지 않는다.
func (s *SubscriptionService) Cancel(userID int64) error {
	sub, err := s.subscriptionRepo.GetActiveByUser(userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoActiveSubscription
		}
		return err
	}

	return s.subscriptionRepo.UpdateStatus(sub.ID, model.SubscriptionCancelled)
}

func buildSubscriptionInfo(sub *model.Subscription) *dto.SubscriptionInfo {
	return &dto.SubscriptionInfo{
		Plan:      sub.Plan,
		Status:    sub.Status,
		StartedAt: sub.StartedAt.Format(time.RFC3339),
		ExpiresAt: sub.ExpiresAt.Format(time.RFC3339),
	}
}
