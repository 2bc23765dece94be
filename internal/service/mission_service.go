package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/queue"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var (
	ErrMissionNotFound    = errors.New("Mission not found")
	ErrMissionAlreadyDone = errors.New("Mission already completed")
)

// MissionService 7일 챌린저 미션. 첫 조회 때 설정 기반으로 시드하고,
// 완료 시 보상을 지급한다. 7일 전체 완료 시 추가 보너스.
type MissionService struct {
	missionRepo *repository.MissionRepository
	cashSvc     *CashService
	queue       *queue.Queue
	cfg         *config.Config
}

func NewMissionService(missionRepo *repository.MissionRepository, cashSvc *CashService, q *queue.Queue, cfg *config.Config) *MissionService {
	return &MissionService{
		missionRepo: missionRepo,
		cashSvc:     cashSvc,
		queue:       q,
		cfg:         cfg,
	}
}

// List 미션 목록과 진행률. 미션이 없으면 먼저 시드한다.
func (s *MissionService) List(userID int64) (*dto.MissionList, error) {
	if err := s.ensureSeeded(userID); err != nil {
		return nil, err
	}

	missions, err := s.missionRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.MissionItem, 0, len(missions))
	completed := 0
	for _, m := range missions {
		if m.Completed {
			completed++
		}
		items = append(items, &dto.MissionItem{
			Day:          m.Day,
			Title:        m.Title,
			RewardAmount: m.RewardAmount,
			Completed:    m.Completed,
			CompletedAt:  formatTime(m.CompletedAt),
		})
	}

	percent := 0
	if len(missions) > 0 {
		percent = completed * 100 / len(missions)
	}

	return &dto.MissionList{
		Missions:        items,
		CompletedCount:  completed,
		ProgressPercent: percent,
	}, nil
}

// Complete 미션 완료 처리와 보상 지급
func (s *MissionService) Complete(userID int64, day int) (*dto.MissionCompleted, error) {
	if err := s.ensureSeeded(userID); err != nil {
		return nil, err
	}

	mission, err := s.missionRepo.GetByUserAndDay(userID, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, err
	}

	ok, err := s.missionRepo.MarkCompleted(userID, day, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissionAlreadyDone
	}

	desc := fmt.Sprintf("챌린저 미션 %d일차 완료", day)
	balance, err := s.cashSvc.Reward(userID, mission.RewardAmount, model.CashTypeReward, desc)
	if err != nil {
		return nil, err
	}

	result := &dto.MissionCompleted{
		Day:    day,
		Reward: mission.RewardAmount,
		AiCash: balance,
	}

	// 전체 완료 시 스트릭 보너스
	completedCount, err := s.missionRepo.CountCompleted(userID)
	if err != nil {
		return nil, err
	}
	if int(completedCount) == len(s.cfg.Missions.Days) && s.cfg.Missions.StreakBonus > 0 {
		balance, err = s.cashSvc.Reward(userID, s.cfg.Missions.StreakBonus, model.CashTypeReward, "챌린저 미션 7일 완주 보너스")
		if err != nil {
			return nil, err
		}
		result.StreakBonus = s.cfg.Missions.StreakBonus
		result.AiCash = balance
		result.AllDone = true
	}

	s.publishMissionCompleted(userID, result)

	return result, nil
}

// ensureSeeded 사용자 미션이 없으면 설정 기반으로 생성
func (s *MissionService) ensureSeeded(userID int64) error {
	count, err := s.missionRepo.CountByUser(userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	missions := make([]*model.ChallengerMission, 0, len(s.cfg.Missions.Days))
	for _, day := range s.cfg.Missions.Days {
		missions = append(missions, &model.ChallengerMission{
			UserID:       userID,
			Day:          day.Day,
			Title:        day.Title,
			RewardAmount: day.Reward,
		})
	}
	return s.missionRepo.CreateBatch(missions)
}

func (s *MissionService) publishMissionCompleted(userID int64, result *dto.MissionCompleted) {
	if s.queue == nil {
		return
	}

	evt := &queue.Event{
		Type:   queue.EventMissionCompleted,
		UserID: userID,
		Payload: map[string]interface{}{
			"day":      result.Day,
			"reward":   result.Reward,
			"all_done": result.AllDone,
		},
	}
	if err := s.queue.Push(context.Background(), evt); err != nil {
		log.Printf("Failed to publish mission_completed event: %v", err)
	}
}
