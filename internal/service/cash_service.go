package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/queue"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var (
	ErrInsufficientCash = errors.New("Insufficient AI cash")
	ErrDuplicateRequest = errors.New("Duplicate request")
	ErrUserNotFound     = errors.New("User not found")
)

// CashService AI캐시 잔액과 원장을 관리한다.
// 모든 잔액 변경은 원장 기록과 한 트랜잭션으로 처리된다.
type CashService struct {
	cashRepo *repository.CashRepository
	userRepo *repository.UserRepository
	queue    *queue.Queue
}

func NewCashService(cashRepo *repository.CashRepository, userRepo *repository.UserRepository, q *queue.Queue) *CashService {
	return &CashService{
		cashRepo: cashRepo,
		userRepo: userRepo,
		queue:    q,
	}
}

// Charge AI캐시 충전
func (s *CashService) Charge(userID int64, req *dto.CashRequest) (*dto.CashBalance, error) {
	desc := req.Description
	if desc == "" {
		desc = "AI캐시 충전"
	}

	record, err := s.cashRepo.ApplyChange(userID, req.Amount, model.CashTypeCharge, desc, req.RequestID)
	if err != nil {
		return nil, s.mapCashError(err)
	}

	s.publishCashChanged(userID, record)

	return &dto.CashBalance{UserID: userID, AiCash: record.BalanceAfter}, nil
}

// Spend AI캐시 차감. 잔액이 부족하면 거부한다.
func (s *CashService) Spend(userID int64, req *dto.CashRequest) (*dto.CashBalance, error) {
	desc := req.Description
	if desc == "" {
		desc = "AI캐시 사용"
	}

	record, err := s.cashRepo.ApplyChange(userID, -req.Amount, model.CashTypeSpend, desc, req.RequestID)
	if err != nil {
		return nil, s.mapCashError(err)
	}

	s.publishCashChanged(userID, record)

	return &dto.CashBalance{UserID: userID, AiCash: record.BalanceAfter}, nil
}

// Reward 보상 지급 (미션, 추천, 자동화 완료 등 내부 호출용)
func (s *CashService) Reward(userID int64, amount int, txType, description string) (int, error) {
	record, err := s.cashRepo.ApplyChange(userID, amount, txType, description, nil)
	if err != nil {
		return 0, s.mapCashError(err)
	}

	s.publishCashChanged(userID, record)

	return record.BalanceAfter, nil
}

// SpendFor 내부 기능의 차감 호출용 (매장 정보 추가 등록, 구독 결제)
func (s *CashService) SpendFor(userID int64, amount int, description string, requestID *string) (int, error) {
	record, err := s.cashRepo.ApplyChange(userID, -amount, model.CashTypeSpend, description, requestID)
	if err != nil {
		return 0, s.mapCashError(err)
	}

	s.publishCashChanged(userID, record)

	return record.BalanceAfter, nil
}

// GetBalance 잔액 조회
func (s *CashService) GetBalance(userID int64) (*dto.CashBalance, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &dto.CashBalance{UserID: user.ID, AiCash: user.AiCash}, nil
}

// ListTransactions 원장 내역 조회
func (s *CashService) ListTransactions(userID int64, page, pageSize int) ([]*dto.CashTransactionItem, int64, error) {
	txs, total, err := s.cashRepo.ListByUser(userID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*dto.CashTransactionItem, 0, len(txs))
	for _, tx := range txs {
		items = append(items, &dto.CashTransactionItem{
			ID:           tx.ID,
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			Type:         tx.Type,
			Description:  tx.Description,
			CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
		})
	}

	return items, total, nil
}

func (s *CashService) mapCashError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInsufficientBalance):
		return ErrInsufficientCash
	case errors.Is(err, repository.ErrDuplicateRequest):
		return ErrDuplicateRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrUserNotFound
	default:
		return err
	}
}

// publishCashChanged 잔액 변경 알림. 실패해도 요청은 성공 처리한다.
func (s *CashService) publishCashChanged(userID int64, record *model.CashTransaction) {
	if s.queue == nil {
		return
	}

	evt := &queue.Event{
		Type:   queue.EventCashChanged,
		UserID: userID,
		Payload: map[string]interface{}{
			"amount":        record.Amount,
			"balance_after": record.BalanceAfter,
			"type":          record.Type,
			"description":   record.Description,
		},
	}
	if err := s.queue.Push(context.Background(), evt); err != nil {
		log.Printf("Failed to publish cash_changed event: %v", err)
	}
}
