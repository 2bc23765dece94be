package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/config"
	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var (
	ErrStoreInfoNotFound   = errors.New("Store info not found")
	ErrStoreInfoPermission = errors.New("You do not have permission to modify this store info")
)

// StoreInfoService 매장 정보 관리. 첫 등록은 무료, 추가 등록은 AI캐시를 차감한다.
type StoreInfoService struct {
	storeInfoRepo *repository.StoreInfoRepository
	cashSvc       *CashService
	cfg           *config.Config
}

func NewStoreInfoService(storeInfoRepo *repository.StoreInfoRepository, cashSvc *CashService, cfg *config.Config) *StoreInfoService {
	return &StoreInfoService{
		storeInfoRepo: storeInfoRepo,
		cashSvc:       cashSvc,
		cfg:           cfg,
	}
}

// Create 매장 정보 등록
func (s *StoreInfoService) Create(userID int64, req *dto.StoreInfoRequest) (*dto.StoreInfoCreated, error) {
	count, err := s.storeInfoRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	charged := 0
	balance := 0
	if count > 0 {
		// 두 번째 등록부터 유료
		charged = s.cfg.StoreInfo.ExtraEntryCost
		balance, err = s.cashSvc.SpendFor(userID, charged, "매장 정보 추가 등록", nil)
		if err != nil {
			return nil, err
		}
	} else {
		current, err := s.cashSvc.GetBalance(userID)
		if err != nil {
			return nil, err
		}
		balance = current.AiCash
	}

	info := &model.StoreInfo{
		UserID:      userID,
		StoreName:   req.StoreName,
		ProductName: req.ProductName,
		Keywords:    req.Keywords,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
	}
	if err := s.storeInfoRepo.Create(info); err != nil {
		return nil, err
	}

	return &dto.StoreInfoCreated{
		ID:      info.ID,
		Charged: charged,
		AiCash:  balance,
	}, nil
}

// List 내 매장 정보 목록
func (s *StoreInfoService) List(userID int64) ([]*model.StoreInfo, error) {
	return s.storeInfoRepo.ListByUser(userID)
}

// Get 매장 정보 단건 조회. 본인 것만 볼 수 있다.
func (s *StoreInfoService) Get(userID, id int64) (*model.StoreInfo, error) {
	info, err := s.storeInfoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreInfoNotFound
		}
		return nil, err
	}
	if info.UserID != userID {
		return nil, ErrStoreInfoPermission
	}
	return info, nil
}

// Update 매장 정보 수정
func (s *StoreInfoService) Update(userID, id int64, req *dto.StoreInfoRequest) (*model.StoreInfo, error) {
	info, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	info.StoreName = req.StoreName
	info.ProductName = req.ProductName
	info.Keywords = req.Keywords
	info.Description = req.Description
	info.Address = req.Address
	info.Phone = req.Phone

	if err := s.storeInfoRepo.Update(info); err != nil {
		return nil, err
	}
	return info, nil
}

// Delete 매장 정보 삭제
func (s *StoreInfoService) Delete(userID, id int64) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.storeInfoRepo.Delete(id)
}
