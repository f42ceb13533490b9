package controller

import (
	"time"

	"github.com/Sspung/AIMatchMaker/internal/service"
	"github.com/Sspung/AIMatchMaker/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *service.AnalyticsService
}

func NewAnalyticsController(analytics *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// @Summary 平台使用统计
// @Description 聚合统计带有时间相关的轻微波动，用于前端的实时感。
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics/stats [get]
func (c *AnalyticsController) GetStats(ctx *gin.Context) {
	stats, err := c.Analytics.GetStats(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 分类排行
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics/rankings [get]
func (c *AnalyticsController) GetCategoryRankings(ctx *gin.Context) {
	rankings, err := c.Analytics.GetCategoryRankings()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rankings)
}

// @Summary 热门工具
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics/popular [get]
func (c *AnalyticsController) GetPopular(ctx *gin.Context) {
	tools, err := c.Analytics.GetPopular(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tools)
}
