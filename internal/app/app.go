package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ajussi_backend/database"
	"ajussi_backend/internal/auth"
	"ajussi_backend/internal/config"
	"ajussi_backend/internal/handlers"
	"ajussi_backend/internal/logger"
	"ajussi_backend/internal/middleware"
	"ajussi_backend/internal/repositories"
	"ajussi_backend/internal/routes"
	"ajussi_backend/internal/services"
	"ajussi_backend/internal/validator"
	"ajussi_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ginRouter := SetupRouter(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full application graph and returns the router.
// Split out of Run so tests can build the same graph against their own DB.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	serviceContainer := initializeServices(gormDB, tokenManager)
	appHandlers := initializeHandlers(serviceContainer)

	ratingWorker := workers.NewRatingWorker(repositories.NewAjussiProfileRepository(gormDB))
	ratingWorker.Start(ctx)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, tokenManager)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB, tokenManager *auth.TokenManager) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	ajussiRepo := repositories.NewAjussiProfileRepository(gormDB)
	requestRepo := repositories.NewRequestRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	favoriteRepo := repositories.NewFavoriteRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, profileRepo, tokenManager),
		RequestService:     services.NewRequestService(requestRepo, ajussiRepo, profileRepo),
		ReviewService:      services.NewReviewService(reviewRepo, requestRepo, profileRepo),
		ProfileService:     services.NewProfileService(ajussiRepo),
		FavoriteService:    services.NewFavoriteService(favoriteRepo, ajussiRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, repositories.NewUnitOfWork(gormDB)),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, services.AuthService),
		RequestHandler:     handlers.NewRequestHandler(baseHandler, services.RequestService),
		ReviewHandler:      handlers.NewReviewHandler(baseHandler, services.ReviewService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, services.ProfileService),
		FavoriteHandler:    handlers.NewFavoriteHandler(baseHandler, services.FavoriteService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}
