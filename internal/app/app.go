package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sspung/AIMatchMaker/internal/config"
	"github.com/Sspung/AIMatchMaker/internal/controller"
	"github.com/Sspung/AIMatchMaker/internal/repository"
	"github.com/Sspung/AIMatchMaker/internal/service"
	"github.com/Sspung/AIMatchMaker/pkg/database"
	"github.com/Sspung/AIMatchMaker/pkg/logger"
	"github.com/Sspung/AIMatchMaker/pkg/monitoring"
	"github.com/Sspung/AIMatchMaker/pkg/security"
	"github.com/Sspung/AIMatchMaker/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	tool     *repository.ToolRepository
	bundle   *repository.BundleRepository
	question *repository.QuizQuestionRepository
	stat     *repository.UsageStatRepository
	favorite *repository.FavoriteRepository
	pkg      *repository.CustomPackageRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	catalog   *service.CatalogService
	bundle    *service.BundleService
	quiz      *service.QuizService
	recommend *service.RecommendService
	analytics *service.AnalyticsService
	updater   *service.UpdaterService
	user      *service.UserService
	pkg       *service.PackageService
}

type controllers struct {
	auth      *controller.AuthController
	tool      *controller.ToolController
	bundle    *controller.BundleController
	quiz      *controller.QuizController
	analytics *controller.AnalyticsController
	user      *controller.UserController
	pkg       *controller.PackageController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新配置并通知所有回调
func (a *App) ApplyConfig(cfg *config.Config) {
	cfg.ForceMigrate = a.Config.ForceMigrate
	cfg.MigrateOnly = a.Config.MigrateOnly
	*a.Config = *cfg
	for _, cb := range a.configCallbacks {
		cb(a.Config)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		tool:     repository.NewToolRepository(db),
		bundle:   repository.NewBundleRepository(db),
		question: repository.NewQuizQuestionRepository(db),
		stat:     repository.NewUsageStatRepository(db),
		favorite: repository.NewFavoriteRepository(db),
		pkg:      repository.NewCustomPackageRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.catalog = service.NewCatalogService(repos.tool, rdb)
	s.bundle = service.NewBundleService(repos.bundle, repos.tool)
	s.quiz = service.NewQuizService(repos.question)
	s.recommend = service.NewRecommendService(repos.tool, repos.bundle, repos.question)
	s.analytics = service.NewAnalyticsService(repos.stat, repos.tool)
	s.updater = service.NewUpdaterService(repos.tool, s.catalog)
	s.user = service.NewUserService(repos.user, repos.favorite)
	s.pkg = service.NewPackageService(repos.pkg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		tool:      controller.NewToolController(s.catalog, s.storage, s.updater),
		bundle:    controller.NewBundleController(s.bundle),
		quiz:      controller.NewQuizController(s.quiz, s.recommend),
		analytics: controller.NewAnalyticsController(s.analytics),
		user:      controller.NewUserController(s.user),
		pkg:       controller.NewPackageController(s.pkg),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 启动目录自动更新任务
func (a *App) startBackgroundTasks(s *services) {
	if !a.Config.Updater.Enabled {
		return
	}
	go func() {
		ticker := time.NewTicker(a.Config.Updater.Interval)
		defer ticker.Stop()
		for range ticker.C {
			report, err := s.updater.RunOnce()
			if err != nil {
				logger.Log.Error("catalog update error", zap.Error(err))
				continue
			}
			logger.Log.Info("catalog updated",
				zap.Int("added", report.Added),
				zap.Int("updated", report.Updated),
				zap.Int("skipped", report.Skipped))
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("ai-matchmaker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
