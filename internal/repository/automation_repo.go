package repository

import (
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

type AutomationRepository struct {
	db *gorm.DB
}

func NewAutomationRepository(db *gorm.DB) *AutomationRepository {
	return &AutomationRepository{db: db}
}

func (r *AutomationRepository) Create(progress *model.AutomationProgress) error {
	return r.db.Create(progress).Error
}

func (r *AutomationRepository) GetByUserAndTool(userID, toolID int64) (*model.AutomationProgress, error) {
	var progress model.AutomationProgress
	err := r.db.Where("user_id = ? AND tool_id = ?", userID, toolID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *AutomationRepository) Update(progress *model.AutomationProgress) error {
	return r.db.Save(progress).Error
}

func (r *AutomationRepository) ListByUser(userID int64) ([]*model.AutomationProgress, error) {
	var list []*model.AutomationProgress
	err := r.db.Where("user_id = ?", userID).Order("tool_id ASC").Find(&list).Error
	return list, err
}
