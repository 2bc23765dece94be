package repository

import (
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

type ToolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) Create(tool *model.Tool) error {
	return r.db.Create(tool).Error
}

func (r *ToolRepository) GetByID(id int64) (*model.Tool, error) {
	var tool model.Tool
	err := r.db.Where("id = ?", id).First(&tool).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

func (r *ToolRepository) GetByIDs(ids []int64) ([]*model.Tool, error) {
	var tools []*model.Tool
	if len(ids) == 0 {
		return tools, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&tools).Error
	return tools, err
}

func (r *ToolRepository) Update(tool *model.Tool) error {
	return r.db.Save(tool).Error
}

func (r *ToolRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.Tool{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ToolRepository) Delete(id int64) error {
	return r.db.Delete(&model.Tool{}, id).Error
}

// List 도구 목록. category 가 비어 있으면 전체.
func (r *ToolRepository) List(category string, activeOnly bool, page, pageSize int) ([]*model.Tool, int64, error) {
	var tools []*model.Tool
	var total int64

	query := r.db.Model(&model.Tool{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("usage_count DESC, id ASC").Offset(offset).Limit(pageSize).Find(&tools).Error; err != nil {
		return nil, 0, err
	}

	return tools, total, nil
}

// IncrementUsageCount 사용 횟수 증가
func (r *ToolRepository) IncrementUsageCount(id int64) error {
	return r.db.Model(&model.Tool{}).Where("id = ?", id).
		Update("usage_count", gorm.Expr("usage_count + 1")).Error
}

func (r *ToolRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Tool{}).Count(&count).Error
	return count, err
}

// TotalUsage 전체 도구 사용 횟수 합계
func (r *ToolRepository) TotalUsage() (int64, error) {
	var total int64
	err := r.db.Model(&model.Tool{}).Select("COALESCE(SUM(usage_count), 0)").Scan(&total).Error
	return total, err
}
