package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/config"
	"jobtrack/internal/handlers"
	"jobtrack/internal/logger"
	"jobtrack/internal/middleware"
	"jobtrack/internal/render"
	"jobtrack/internal/routes"
	"jobtrack/internal/services"
	"jobtrack/internal/store"
	"jobtrack/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	storeClient, err := store.New(cfg.Store.BaseURL, time.Duration(cfg.Store.TimeoutSeconds)*time.Second)
	if err != nil {
		logger.Fatal("Failed to initialize store client", "error", err)
	}
	logger.Info("Store client initialized", "base_url", cfg.Store.BaseURL)

	ginRouter := SetupRouter(cfg, storeClient)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, storeClient *store.Client) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices()

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, storeClient)

	// 4. Делегируем регистрацию маршрутов пакету routes
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	return &services.ServiceContainer{
		SessionService: services.NewSessionService(),
		JobService:     services.NewJobService(),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	pageHandler := handlers.NewPageHandler(baseHandler, container.JobService)

	return &handlers.AppHandlers{
		PageHandler: pageHandler,
		AuthHandler: handlers.NewAuthHandler(baseHandler, container.SessionService),
		JobHandler:  handlers.NewJobHandler(baseHandler, container.JobService, pageHandler),
	}
}

func initializeGinRouter(cfg *config.Config, storeClient *store.Client) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.StoreMiddleware(storeClient))
	router.Use(middleware.SessionMiddleware())

	router.SetHTMLTemplate(render.Templates())

	return router
}
