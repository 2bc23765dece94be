package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

var (
	// ErrInsufficientBalance 잔액 부족으로 차감 불가
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrDuplicateRequest 같은 request_id 로 이미 처리된 요청
	ErrDuplicateRequest = errors.New("duplicate request")
)

type CashRepository struct {
	db *gorm.DB
}

func NewCashRepository(db *gorm.DB) *CashRepository {
	return &CashRepository{db: db}
}

// ApplyChange 잔액 변경과 원장 기록을 한 트랜잭션으로 처리한다.
// amount 는 부호 포함이며, 잔액이 음수가 되는 차감은 거부된다.
// requestID 가 있으면 같은 (user, request) 중복 제출을 거부한다.
func (r *CashRepository) ApplyChange(userID int64, amount int, txType, description string, requestID *string) (*model.CashTransaction, error) {
	var record *model.CashTransaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if requestID != nil {
			var dup int64
			if err := tx.Model(&model.CashTransaction{}).
				Where("user_id = ? AND request_id = ?", userID, *requestID).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				return ErrDuplicateRequest
			}
		}

		// 잔액 하한을 조건부 UPDATE 로 강제한다
		res := tx.Model(&model.User{}).
			Where("id = ? AND ai_cash + ? >= 0", userID, amount).
			Update("ai_cash", gorm.Expr("ai_cash + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&model.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrInsufficientBalance
		}

		var user model.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}

		record = &model.CashTransaction{
			UserID:       userID,
			Amount:       amount,
			BalanceAfter: user.AiCash,
			Type:         txType,
			Description:  description,
			RequestID:    requestID,
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListByUser 사용자 원장 내역. 최신 순으로 반환한다.
func (r *CashRepository) ListByUser(userID int64, page, pageSize int) ([]*model.CashTransaction, int64, error) {
	var txs []*model.CashTransaction
	var total int64

	query := r.db.Model(&model.CashTransaction{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&txs).Error; err != nil {
		return nil, 0, err
	}

	return txs, total, nil
}

func (r *CashRepository) GetByRequestID(userID int64, requestID string) (*model.CashTransaction, error) {
	var record model.CashTransaction
	err := r.db.Where("user_id = ? AND request_id = ?", userID, requestID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
