package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
)

var (
	ErrToolNotFound     = errors.New("Tool not found")
	ErrTemplateNotFound = errors.New("Template not found")
)

// CatalogService 도구와 템플릿 카탈로그를 관리한다
type CatalogService struct {
	toolRepo     *repository.ToolRepository
	templateRepo *repository.TemplateRepository
}

func NewCatalogService(toolRepo *repository.ToolRepository, templateRepo *repository.TemplateRepository) *CatalogService {
	return &CatalogService{
		toolRepo:     toolRepo,
		templateRepo: templateRepo,
	}
}

// ListTools 도구 목록. 일반 사용자에게는 활성 도구만 보인다.
func (s *CatalogService) ListTools(category string, includeInactive bool, page, pageSize int) ([]*model.Tool, int64, error) {
	return s.toolRepo.List(category, !includeInactive, page, pageSize)
}

// GetTool 도구 단건 조회
func (s *CatalogService) GetTool(id int64) (*model.Tool, error) {
	tool, err := s.toolRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	return tool, nil
}

// UseTool 도구 사용 보고. 사용 횟수를 올리고 최신 값을 돌려준다.
func (s *CatalogService) UseTool(id int64) (*dto.UsageResponse, error) {
	if _, err := s.GetTool(id); err != nil {
		return nil, err
	}

	if err := s.toolRepo.IncrementUsageCount(id); err != nil {
		return nil, err
	}

	tool, err := s.toolRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	return &dto.UsageResponse{Success: true, UsageCount: tool.UsageCount}, nil
}

// CreateTool 도구 등록 (관리자)
func (s *CatalogService) CreateTool(req *dto.CreateToolRequest) (*model.Tool, error) {
	tool := &model.Tool{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if err := s.toolRepo.Create(tool); err != nil {
		return nil, err
	}
	return tool, nil
}

// UpdateTool 도구 수정 (관리자)
func (s *CatalogService) UpdateTool(id int64, req *dto.UpdateToolRequest) (*model.Tool, error) {
	tool, err := s.GetTool(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tool.Name = *req.Name
	}
	if req.Description != nil {
		tool.Description = *req.Description
	}
	if req.Category != nil {
		tool.Category = *req.Category
	}
	if req.Icon != nil {
		tool.Icon = *req.Icon
	}
	if req.IsActive != nil {
		tool.IsActive = *req.IsActive
	}

	if err := s.toolRepo.Update(tool); err != nil {
		return nil, err
	}
	return tool, nil
}

// DeleteTool 도구 삭제 (관리자)
func (s *CatalogService) DeleteTool(id int64) error {
	if _, err := s.GetTool(id); err != nil {
		return err
	}
	return s.toolRepo.Delete(id)
}

// ListTemplates 템플릿 목록
func (s *CatalogService) ListTemplates(category string, includeInactive bool, page, pageSize int) ([]*model.Template, int64, error) {
	return s.templateRepo.List(category, !includeInactive, page, pageSize)
}

// GetTemplate 템플릿 단건 조회
func (s *CatalogService) GetTemplate(id int64) (*model.Template, error) {
	tpl, err := s.templateRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return tpl, nil
}

// UseTemplate 템플릿 사용 보고
func (s *CatalogService) UseTemplate(id int64) (*dto.UsageResponse, error) {
	if _, err := s.GetTemplate(id); err != nil {
		return nil, err
	}

	if err := s.templateRepo.IncrementUsageCount(id); err != nil {
		return nil, err
	}

	tpl, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	return &dto.UsageResponse{Success: true, UsageCount: tpl.UsageCount}, nil
}

// CreateTemplate 템플릿 등록 (관리자)
func (s *CatalogService) CreateTemplate(req *dto.CreateTemplateRequest) (*model.Template, error) {
	tpl := &model.Template{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Thumbnail:   req.Thumbnail,
		IsActive:    true,
	}
	if err := s.templateRepo.Create(tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// UpdateTemplate 템플릿 수정 (관리자)
func (s *CatalogService) UpdateTemplate(id int64, req *dto.UpdateTemplateRequest) (*model.Template, error) {
	tpl, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		tpl.Title = *req.Title
	}
	if req.Description != nil {
		tpl.Description = *req.Description
	}
	if req.Category != nil {
		tpl.Category = *req.Category
	}
	if req.Thumbnail != nil {
		tpl.Thumbnail = *req.Thumbnail
	}
	if req.IsActive != nil {
		tpl.IsActive = *req.IsActive
	}

	if err := s.templateRepo.Update(tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// DeleteTemplate 템플릿 삭제 (관리자)
func (s *CatalogService) DeleteTemplate(id int64) error {
	if _, err := s.GetTemplate(id); err != nil {
		return err
	}
	return s.templateRepo.Delete(id)
}
