package controller

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Sspung/AIMatchMaker/internal/service"
	"github.com/Sspung/AIMatchMaker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ToolController struct {
	Catalog *service.CatalogService
	Storage *service.StorageService
	Updater *service.UpdaterService
}

func NewToolController(catalog *service.CatalogService, storage *service.StorageService, updater *service.UpdaterService) *ToolController {
	return &ToolController{Catalog: catalog, Storage: storage, Updater: updater}
}

// @Summary 工具列表
// @Tags AI工具
// @Produce json
// @Param category query string false "类别过滤，전체 表示全部"
// @Param search query string false "搜索关键词"
// @Success 200 {object} util.Response
// @Router /api/ai-tools [get]
func (c *ToolController) ListTools(ctx *gin.Context) {
	tools, err := c.Catalog.ListTools(ctx.Query("category"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tools)
}

// @Summary 工具详情
// @Tags AI工具
// @Produce json
// @Param id path int true "工具ID"
// @Success 200 {object} util.Response
// @Router /api/ai-tools/{id} [get]
func (c *ToolController) GetTool(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	tool, err := c.Catalog.GetTool(uint(id))
	if err == gorm.ErrRecordNotFound {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tool)
}

// @Summary 创建工具
// @Tags 管理端
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ToolRequest true "工具信息"
// @Success 201 {object} util.Response
// @Router /api/admin/tools [post]
func (c *ToolController) CreateTool(ctx *gin.Context) {
	var req service.ToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tool, err := c.Catalog.CreateTool(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, tool)
}

// @Summary 更新工具
// @Tags 管理端
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "工具ID"
// @Param body body service.ToolRequest true "工具信息"
// @Success 200 {object} util.Response
// @Router /api/admin/tools/{id} [put]
func (c *ToolController) UpdateTool(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.ToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tool, err := c.Catalog.UpdateTool(uint(id), req)
	if err == gorm.ErrRecordNotFound {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tool)
}

// @Summary 删除工具
// @Tags 管理端
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "工具ID"
// @Success 200 {object} util.Response
// @Router /api/admin/tools/{id} [delete]
func (c *ToolController) DeleteTool(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Catalog.DeleteTool(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary 上传工具图标
// @Tags 管理端
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "工具ID"
// @Param icon formData file true "图标文件"
// @Success 200 {object} util.Response
// @Router /api/admin/tools/{id}/icon [post]
func (c *ToolController) UploadIcon(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	fileHeader, err := ctx.FormFile("icon")
	if err != nil {
		util.BadRequest(ctx, "icon file required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range util.AllowedIconExtensions {
		if e == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "unsupported icon format")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := "icons/" + strconv.Itoa(id) + ext
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, util.MimeImage) {
		util.BadRequest(ctx, "icon must be an image")
		return
	}

	url, err := c.Storage.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	tool, err := c.Catalog.SetToolIcon(uint(id), url)
	if err == gorm.ErrRecordNotFound {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tool)
}

// @Summary 手动触发工具池同步
// @Tags 管理端
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/tools/refresh [post]
func (c *ToolController) RefreshCatalog(ctx *gin.Context) {
	report, err := c.Updater.RunOnce()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
