package repository

import (
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(msg *model.ChatMessage) error {
	return r.db.Create(msg).Error
}

func (r *ChatRepository) GetByID(id int64) (*model.ChatMessage, error) {
	var msg model.ChatMessage
	err := r.db.Where("id = ?", id).First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateResponse 응답 기록
func (r *ChatRepository) UpdateResponse(id int64, response string) error {
	return r.db.Model(&model.ChatMessage{}).Where("id = ?", id).
		Update("response", response).Error
}

// ListByUser 사용자 대화 내역. 오래된 순으로 반환한다.
func (r *ChatRepository) ListByUser(userID int64, page, pageSize int) ([]*model.ChatMessage, int64, error) {
	var messages []*model.ChatMessage
	var total int64

	query := r.db.Model(&model.ChatMessage{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at ASC, id ASC").Offset(offset).Limit(pageSize).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *ChatRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.ChatMessage{}).Count(&count).Error
	return count, err
}
