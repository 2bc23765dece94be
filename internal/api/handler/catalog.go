package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geokjeongma/ai-server/internal/pkg/response"
	"github.com/geokjeongma/ai-server/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListTools 도구 목록 (사용량 많은 순)
// GET /api/tools?category=
func (h *CatalogHandler) ListTools(c *gin.Context) {
	page, pageSize := pageParams(c)
	category := c.Query("category")

	tools, total, err := h.catalogService.ListTools(category, false, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OKPage(c, total, page, pageSize, tools)
}

// GetTool 도구 단건 조회
// GET /api/tools/:id
func (h *CatalogHandler) GetTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid tool id")
		return
	}

	tool, err := h.catalogService.GetTool(id)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, tool)
}

// UseTool 도구 사용 횟수 보고
// PATCH /api/tools/:id/usage
func (h *CatalogHandler) UseTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid tool id")
		return
	}

	usage, err := h.catalogService.UseTool(id)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, usage)
}

// ListTemplates 템플릿 목록
// GET /api/templates?category=
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	page, pageSize := pageParams(c)
	category := c.Query("category")

	templates, total, err := h.catalogService.ListTemplates(category, false, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OKPage(c, total, page, pageSize, templates)
}

// GetTemplate 템플릿 단건 조회
// GET /api/templates/:id
func (h *CatalogHandler) GetTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid template id")
		return
	}

	template, err := h.catalogService.GetTemplate(id)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, template)
}

// UseTemplate 템플릿 사용 횟수 보고
// PATCH /api/templates/:id/usage
func (h *CatalogHandler) UseTemplate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid template id")
		return
	}

	usage, err := h.catalogService.UseTemplate(id)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.OK(c, usage)
}
