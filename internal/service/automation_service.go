package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var ErrAutomationDone = errors.New("Automation setup already completed")

// AutomationService 도구별 자동화 설정 진행을 관리한다.
// 마지막 단계 완료 시 한 번만 보상을 지급한다.
type AutomationService struct {
	automationRepo *repository.AutomationRepository
	toolRepo       *repository.ToolRepository
	cashSvc        *CashService
	cfg            *config.Config
}

func NewAutomationService(automationRepo *repository.AutomationRepository, toolRepo *repository.ToolRepository, cashSvc *CashService, cfg *config.Config) *AutomationService {
	return &AutomationService{
		automationRepo: automationRepo,
		toolRepo:       toolRepo,
		cashSvc:        cashSvc,
		cfg:            cfg,
	}
}

// Get 진행 상태 조회. 시작 전이면 0단계로 돌려준다.
func (s *AutomationService) Get(userID, toolID int64) (*dto.AutomationProgressInfo, error) {
	if _, err := s.toolRepo.GetByID(toolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	progress, err := s.automationRepo.GetByUserAndTool(userID, toolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.AutomationProgressInfo{
				ToolID:      toolID,
				Stage:       0,
				TotalStages: s.cfg.Automation.TotalStages,
			}, nil
		}
		return nil, err
	}

	return s.buildProgressInfo(progress, 0), nil
}

// Advance 다음 단계로 진행. 마지막 단계 완료 시 보상 지급.
func (s *AutomationService) Advance(userID, toolID int64) (*dto.AutomationProgressInfo, error) {
	if _, err := s.toolRepo.GetByID(toolID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	progress, err := s.automationRepo.GetByUserAndTool(userID, toolID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		progress = &model.AutomationProgress{
			UserID:      userID,
			ToolID:      toolID,
			Stage:       0,
			TotalStages: s.cfg.Automation.TotalStages,
		}
		if err := s.automationRepo.Create(progress); err != nil {
			return nil, err
		}
	}

	if progress.Completed {
		return nil, ErrAutomationDone
	}

	progress.Stage++
	reward := 0
	if progress.Stage >= progress.TotalStages {
		progress.Stage = progress.TotalStages
		progress.Completed = true
		if !progress.RewardPaid {
			progress.RewardPaid = true
			reward = s.cfg.Automation.CompletionReward
		}
	}

	if err := s.automationRepo.Update(progress); err != nil {
		return nil, err
	}

	if reward > 0 {
		desc := fmt.Sprintf("자동화 설정 완료 보상 (도구 %d)", toolID)
		if _, err := s.cashSvc.Reward(userID, reward, model.CashTypeReward, desc); err != nil {
			return nil, err
		}
	}

	return s.buildProgressInfo(progress, reward), nil
}

// ListByUser 전체 진행 상태 목록
func (s *AutomationService) ListByUser(userID int64) ([]*dto.AutomationProgressInfo, error) {
	list, err := s.automationRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AutomationProgressInfo, 0, len(list))
	for _, p := range list {
		items = append(items, s.buildProgressInfo(p, 0))
	}
	return items, nil
}

func (s *AutomationService) buildProgressInfo(p *model.AutomationProgress, reward int) *dto.AutomationProgressInfo {
	percent := 0
	if p.TotalStages > 0 {
		percent = p.Stage * 100 / p.TotalStages
	}

	return &dto.AutomationProgressInfo{
		ToolID:          p.ToolID,
		Stage:           p.Stage,
		TotalStages:     p.TotalStages,
		ProgressPercent: percent,
		Completed:       p.Completed,
		Reward:          reward,
	}
}
