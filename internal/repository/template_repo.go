package repository

import (
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(tpl *model.Template) error {
	return r.db.Create(tpl).Error
}

func (r *TemplateRepository) GetByID(id int64) (*model.Template, error) {
	var tpl model.Template
	err := r.db.Where("id = ?", id).First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *TemplateRepository) Update(tpl *model.Template) error {
	return r.db.Save(tpl).Error
}

func (r *TemplateRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&model.Template{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TemplateRepository) Delete(id int64) error {
	return r.db.Delete(&model.Template{}, id).Error
}

// List 템플릿 목록. category 가 비어 있으면 전체.
func (r *TemplateRepository) List(category string, activeOnly bool, page, pageSize int) ([]*model.Template, int64, error) {
	var templates []*model.Template
	var total int64

	query := r.db.Model(&model.Template{})
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
	if err := query.Order("usage_count DESC, id ASC").Offset(offset).Limit(pageSize).Find(&templates).Error; err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

// IncrementUsageCount 사용 횟수 증가
func (r *TemplateRepository) IncrementUsageCount(id int64) error {
	return r.db.Model(&model.Template{}).Where("id = ?", id).
		Update("usage_count", gorm.Expr("usage_count + 1")).Error
}

func (r *TemplateRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Template{}).Count(&count).Error
	return count, err
}

// TotalUsage 전체 템플릿 사용 횟수 합계
func (r *TemplateRepository) TotalUsage() (int64, error) {
	var total int64
	err := r.db.Model(&model.Template{}).Select("COALESCE(SUM(usage_count), 0)").Scan(&total).Error
	return total, err
}
