package app

import (
	"github.com/Sspung/AIMatchMaker/docs"
	"github.com/Sspung/AIMatchMaker/internal/config"
	"github.com/Sspung/AIMatchMaker/internal/middleware"
	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 工具目录
		public.GET("/tools", c.tool.ListTools)
		public.GET("/tools/:id", c.tool.GetTool)

		// 套餐目录
		public.GET("/bundles", c.bundle.ListBundles)
		public.GET("/bundles/:id", c.bundle.GetBundle)
		public.GET("/bundles/:id/tools", c.bundle.GetBundleTools)

		// 测验与推荐
		quiz := public.Group("/quiz")
		{
			quiz.GET("/questions", c.quiz.GetQuestions)
			quiz.POST("/sequence", c.quiz.GetSequence)
			quiz.POST("/next", c.quiz.NextQuestion)
			quiz.POST("/previous", c.quiz.PreviousQuestion)
			quiz.POST("/recommend", c.quiz.GetRecommendations)
			quiz.POST("/match/:toolId", c.quiz.GetToolMatch)
		}

		// 统计看板
		analytics := public.Group("/analytics")
		{
			analytics.GET("/stats", c.analytics.GetStats)
			analytics.GET("/rankings", c.analytics.GetCategoryRankings)
			analytics.GET("/popular", c.analytics.GetPopular)
		}

		// 公开的自定义套餐
		public.GET("/packages/public", c.pkg.ListPublicPackages)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/users/profile", c.user.UpdateProfile)

	// 收藏
	rg.GET("/users/favorites", c.user.ListFavorites)
	rg.POST("/users/favorites", c.user.AddFavorite)
	rg.DELETE("/users/favorites/:id", c.user.RemoveFavorite)

	// 自定义套餐
	rg.GET("/packages", c.pkg.ListPackages)
	rg.POST("/packages", c.pkg.CreatePackage)
	rg.GET("/packages/:id", c.pkg.GetPackage)
	rg.PUT("/packages/:id", c.pkg.UpdatePackage)
	rg.DELETE("/packages/:id", c.pkg.DeletePackage)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/tools", c.tool.CreateTool)
		admin.PUT("/tools/:id", c.tool.UpdateTool)
		admin.DELETE("/tools/:id", c.tool.DeleteTool)
		admin.POST("/tools/:id/icon", c.tool.UploadIcon)
		admin.POST("/tools/refresh", c.tool.RefreshCatalog)
	}
}
