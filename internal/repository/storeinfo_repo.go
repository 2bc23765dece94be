package repository

import (
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

type StoreInfoRepository struct {
	db *gorm.DB
}

func NewStoreInfoRepository(db *gorm.DB) *StoreInfoRepository {
	return &StoreInfoRepository{db: db}
}

func (r *StoreInfoRepository) Create(info *model.StoreInfo) error {
	return r.db.Create(info).Error
}

func (r *StoreInfoRepository) GetByID(id int64) (*model.StoreInfo, error) {
	var info model.StoreInfo
	err := r.db.Where("id = ?", id).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *StoreInfoRepository) ListByUser(userID int64) ([]*model.StoreInfo, error) {
	var infos []*model.StoreInfo
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&infos).Error
	return infos, err
}

func (r *StoreInfoRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.StoreInfo{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *StoreInfoRepository) Update(info *model.StoreInfo) error {
	return r.db.Save(info).Error
}

func (r *StoreInfoRepository) Delete(id int64) error {
	return r.db.Delete(&model.StoreInfo{}, id).Error
}
