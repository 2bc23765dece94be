package cron

import (
	"log"
	"time"

	"github.com/geokjeongma/ai-server/internal/repository"
)

// Service 매일 자정(UTC) 기준으로 만료된 구독을 정리하는 백그라운드 작업
type Service struct {
	subscriptionRepo *repository.SubscriptionRepository
	stopChan         chan struct{}
}

func NewService(subscriptionRepo *repository.SubscriptionRepository) *Service {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		stopChan:         make(chan struct{}),
	}
}

// Start 정기 작업 시작
func (s *Service) Start() {
	go s.runDailyExpirySweep()
	log.Println("Cron service started (subscription expiry sweep)")
}

// Stop 정기 작업 종료
func (s *Service) Stop() {
	close(s.stopChan)
	log.Println("Cron service stopped")
}

func (s *Service) runDailyExpirySweep() {
	now := time.Now().UTC()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	timer := time.NewTimer(nextMidnight.Sub(now))

	for {
		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.expireSubscriptions()
			timer.Reset(24 * time.Hour)
		}
	}
}

func (s *Service) expireSubscriptions() {
	log.Println("Starting subscription expiry sweep...")
	count, err := s.subscriptionRepo.ExpireOverdue(time.Now().UTC())
	if err != nil {
		log.Printf("Failed to expire subscriptions: %v", err)
		return
	}
	if count > 0 {
		log.Printf("Subscription expiry sweep completed: expired=%d", count)
	}
}

// RunNow 즉시 실행 (수동 트리거/테스트용)
func (s *Service) RunNow() error {
	_, err := s.subscriptionRepo.ExpireOverdue(time.Now().UTC())
	return err
}
