package controller

import (
	"strconv"

	"github.com/Sspung/AIMatchMaker/internal/service"
	"github.com/Sspung/AIMatchMaker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BundleController struct {
	Service *service.BundleService
}

func NewBundleController(svc *service.BundleService) *BundleController {
	return &BundleController{Service: svc}
}

// @Summary 套餐列表
// @Tags AI套餐
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/ai-bundles [get]
func (c *BundleController) ListBundles(ctx *gin.Context) {
	bundles, err := c.Service.ListBundles()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, bundles)
}

// @Summary 套餐详情
// @Tags AI套餐
// @Produce json
// @Param id path int true "套餐ID"
// @Success 200 {object} util.Response
// @Router /api/ai-bundles/{id} [get]
func (c *BundleController) GetBundle(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	bundle, err := c.Service.GetBundle(uint(id))
	if err == gorm.ErrRecordNotFound {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, bundle)
}

// @Summary 套餐包含的工具
// @Tags AI套餐
// @Produce json
// @Param id path int true "套餐ID"
// @Success 200 {object} util.Response
// @Router /api/ai-bundles/{id}/tools [get]
func (c *BundleController) GetBundleTools(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	tools, err := c.Service.BundleTools(uint(id))
	if err == gorm.ErrRecordNotFound {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tools)
}
