package controller

import (
	"github.com/Sspung/AIMatchMaker/internal/service"
	"github.com/Sspung/AIMatchMaker/internal/util"

	"github.com/gin-gonic/gin"
)

type PackageController struct {
	Package *service.PackageService
}

func NewPackageController(pkg *service.PackageService) *PackageController {
	return &PackageController{Package: pkg}
}

// @Summary 我的自定义套餐
// @Tags 套餐
// @Produce json
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/packages [get]
func (c *PackageController) ListPackages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	packages, err := c.Package.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, packages)
}

// @Summary 公开套餐列表
// @Tags 套餐
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/packages/public [get]
func (c *PackageController) ListPublicPackages(ctx *gin.Context) {
	packages, err := c.Package.ListPublic()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, packages)
}

// @Summary 创建自定义套餐
// @Tags 套餐
// @Accept json
// @Produce json
// @Param body body service.CustomPackageRequest true "套餐内容"
// @Success 201 {object} util.Response
// @Security BearerAuth
// @Router /api/packages [post]
func (c *PackageController) CreatePackage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CustomPackageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pkg, err := c.Package.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, pkg)
}

// @Summary 套餐详情
// @Tags 套餐
// @Produce json
// @Param id path string true "套餐ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/packages/{id} [get]
func (c *PackageController) GetPackage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pkg, err := c.Package.Get(claims.UserID, ctx.Param("id"))
	if err == util.ErrPackageNotFound {
		util.NotFound(ctx)
		return
	}
	if err == util.ErrPermissionDenied {
		util.Forbidden(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pkg)
}

// @Summary 更新套餐
// @Tags 套餐
// @Accept json
// @Produce json
// @Param id path string true "套餐ID"
// @Param body body service.CustomPackageRequest true "套餐内容"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/packages/{id} [put]
func (c *PackageController) UpdatePackage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CustomPackageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pkg, err := c.Package.Update(claims.UserID, ctx.Param("id"), req)
	if err == util.ErrPackageNotFound {
		util.NotFound(ctx)
		return
	}
	if err == util.ErrPermissionDenied {
		util.Forbidden(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pkg)
}

// @Summary 删除套餐
// @Tags 套餐
// @Produce json
// @Param id path string true "套餐ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/packages/{id} [delete]
func (c *PackageController) DeletePackage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.Package.Delete(claims.UserID, ctx.Param("id"))
	if err == util.ErrPackageNotFound {
		util.NotFound(ctx)
		return
	}
	if err == util.ErrPermissionDenied {
		util.Forbidden(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
