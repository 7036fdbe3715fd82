package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campusops/coe-api/api/swagger"
	"github.com/campusops/coe-api/internal/handler"
	"github.com/campusops/coe-api/internal/middleware"
	"github.com/campusops/coe-api/internal/repository"
	"github.com/campusops/coe-api/internal/service"
	"github.com/campusops/coe-api/pkg/cache"
	"github.com/campusops/coe-api/pkg/config"
	"github.com/campusops/coe-api/pkg/database"
	"github.com/campusops/coe-api/pkg/llm"
	"github.com/campusops/coe-api/pkg/logger"
	corsmiddleware "github.com/campusops/coe-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusops/coe-api/pkg/middleware/requestid"
	"github.com/campusops/coe-api/pkg/storage"
)

// @title COE API
// @version 1.0.0
// @description College administration backend: accounts, results, timetable, ID cards and the assistant endpoint
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Bootstrap(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to bootstrap schema", "error", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, context caching disabled", "error", err)
		redisClient = nil
	}

	idStore, err := storage.NewLocalStorage(cfg.Uploads.IDDocsDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare id upload dir", "error", err)
	}
	knowledgeStore, err := storage.NewLocalStorage(cfg.Uploads.KnowledgeDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare knowledge upload dir", "error", err)
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	knowledgeRepo := repository.NewKnowledgeRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	resultRepo := repository.NewResultRepository(db)
	idCardRepo := repository.NewIDCardRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	groqClient := llm.NewClient(cfg.Groq)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, validate, logr, cfg.Admin)
	userSvc := service.NewUserService(userRepo, validate, logr)
	chatSvc := service.NewChatService(knowledgeRepo, timetableRepo, chatRepo, cacheRepo, groqClient,
		validate, logr, service.ChatConfig{
			CacheEnabled: cfg.Cache.ContextEnabled,
			CacheTTL:     cfg.Cache.ContextTTL,
		})
	knowledgeSvc := service.NewKnowledgeService(knowledgeRepo, knowledgeStore, cacheRepo, logr)
	timetableSvc := service.NewTimetableService(timetableRepo, cacheRepo, validate, logr)
	resultSvc := service.NewResultService(resultRepo, userRepo, knowledgeRepo, validate, logr)
	idCardSvc := service.NewIDCardService(idCardRepo, idStore, validate, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		User:      handler.NewUserHandler(userSvc),
		Chat:      handler.NewChatHandler(chatSvc, metricsSvc),
		Knowledge: handler.NewKnowledgeHandler(knowledgeSvc),
		Timetable: handler.NewTimetableHandler(timetableSvc),
		Result:    handler.NewResultHandler(resultSvc),
		IDCard:    handler.NewIDCardHandler(idCardSvc),
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
