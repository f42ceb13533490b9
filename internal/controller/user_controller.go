package controller

import (
	"github.com/Sspung/AIMatchMaker/internal/service"
	"github.com/Sspung/AIMatchMaker/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	User *service.UserService
}

func NewUserController(user *service.UserService) *UserController {
	return &UserController{User: user}
}

// @Summary 更新个人资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body service.ProfileUpdateRequest true "资料字段"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.User.UpdateProfile(claims.UserID, req)
	if err == util.ErrUserNotFound {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary 收藏列表
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/users/favorites [get]
func (c *UserController) ListFavorites(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	favorites, err := c.User.ListFavorites(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, favorites)
}

// @Summary 添加收藏
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body service.FavoriteRequest true "收藏项"
// @Success 201 {object} util.Response
// @Security BearerAuth
// @Router /api/users/favorites [post]
func (c *UserController) AddFavorite(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.FavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fav, err := c.User.AddFavorite(claims.UserID, req)
	if err == util.ErrAlreadyFavorited {
		util.Error(ctx, 409, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, fav)
}

// @Summary 取消收藏
// @Tags 用户
// @Produce json
// @Param id path int true "收藏ID"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/users/favorites/{id} [delete]
func (c *UserController) RemoveFavorite(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	favoriteID, err := util.ParseUintParam(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid favorite id")
		return
	}

	if err := c.User.RemoveFavorite(claims.UserID, favoriteID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
