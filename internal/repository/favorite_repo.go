package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create 즐겨찾기 추가. 같은 (user, tool) 중복 추가를 허용한다.
func (r *FavoriteRepository) Create(fav *model.Favorite) error {
	return r.db.Create(fav).Error
}

// DeleteOne (user, tool) 에 해당하는 즐겨찾기 한 건만 삭제.
// 중복 행이 있어도 가장 오래된 한 건만 지운다.
func (r *FavoriteRepository) DeleteOne(userID, toolID int64) (bool, error) {
	var fav model.Favorite
	err := r.db.Where("user_id = ? AND tool_id = ?", userID, toolID).
		Order("id ASC").First(&fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := r.db.Delete(&model.Favorite{}, fav.ID).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepository) ListByUser(userID int64) ([]*model.Favorite, error) {
	var favs []*model.Favorite
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepository) Exists(userID, toolID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("user_id = ? AND tool_id = ?", userID, toolID).Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
