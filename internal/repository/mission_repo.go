package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

type MissionRepository struct {
	db *gorm.DB
}

func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// CreateBatch 사용자 미션 일괄 생성 (최초 조회 시 시드)
func (r *MissionRepository) CreateBatch(missions []*model.ChallengerMission) error {
	if len(missions) == 0 {
		return nil
	}
	return r.db.Create(missions).Error
}

func (r *MissionRepository) ListByUser(userID int64) ([]*model.ChallengerMission, error) {
	var missions []*model.ChallengerMission
	err := r.db.Where("user_id = ?", userID).Order("day ASC").Find(&missions).Error
	return missions, err
}

func (r *MissionRepository) GetByUserAndDay(userID int64, day int) (*model.ChallengerMission, error) {
	var mission model.ChallengerMission
	err := r.db.Where("user_id = ? AND day = ?", userID, day).First(&mission).Error
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// MarkCompleted 미완료 미션을 완료로 전환. 이미 완료된 미션이면 false.
func (r *MissionRepository) MarkCompleted(userID int64, day int, completedAt time.Time) (bool, error) {
	res := r.db.Model(&model.ChallengerMission{}).
		Where("user_id = ? AND day = ? AND completed = ?", userID, day, false).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": completedAt,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *MissionRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.ChallengerMission{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *MissionRepository) CountCompleted(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.ChallengerMission{}).
		Where("user_id = ? AND completed = ?", userID, true).Count(&count).Error
	return count, err
}
