package service

import (
	"errors"
	"time"

	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var ErrFavoriteNotFound = errors.New("Favorite not found")

type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
	toolRepo     *repository.ToolRepository
}

func NewFavoriteService(favoriteRepo *repository.FavoriteRepository, toolRepo *repository.ToolRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		toolRepo:     toolRepo,
	}
}

// Add 즐겨찾기 추가. 같은 도구를 여러 번 추가할 수 있다.
func (s *FavoriteService) Add(userID, toolID int64) error {
	if _, err := s.toolRepo.GetByID(toolID); err != nil {
		return ErrToolNotFound
	}

	return s.favoriteRepo.Create(&model.Favorite{
		UserID: userID,
		ToolID: toolID,
	})
}

// Remove 즐겨찾기 한 건 삭제. 중복 행이 있어도 한 건만 지운다.
func (s *FavoriteService) Remove(userID, toolID int64) error {
	deleted, err := s.favoriteRepo.DeleteOne(userID, toolID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}
	return nil
}

// List 즐겨찾기 목록. 도구 정보를 붙여서 돌려준다.
func (s *FavoriteService) List(userID int64) ([]*dto.FavoriteItem, error) {
	favs, err := s.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	toolIDs := make([]int64, 0, len(favs))
	for _, f := range favs {
		toolIDs = append(toolIDs, f.ToolID)
	}

	tools, err := s.toolRepo.GetByIDs(toolIDs)
	if err != nil {
		return nil, err
	}
	toolByID := make(map[int64]*model.Tool, len(tools))
	for _, t := range tools {
		toolByID[t.ID] = t
	}

	items := make([]*dto.FavoriteItem, 0, len(favs))
	for _, f := range favs {
		item := &dto.FavoriteItem{
			ID:        f.ID,
			ToolID:    f.ToolID,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
		}
		if tool, ok := toolByID[f.ToolID]; ok {
			item.ToolName = tool.Name
			item.Category = tool.Category
			item.Icon = tool.Icon
		}
		items = append(items, item)
	}

	return items, nil
}
