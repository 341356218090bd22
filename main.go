package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"smileon/config"
	_ "smileon/docs"
	"smileon/internal/cache"
	"smileon/internal/repository"
	"smileon/internal/service"
	"smileon/internal/storage"
	"smileon/internal/transport/rest"
	"smileon/pkg/database"
	"smileon/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SmileOn API
// @version 1.0
// @description 치과 홈페이지 예약 및 게시판 API

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running database migrations")
	if err := database.RunMigrations(db, "./migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, log)
		if err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("object storage initialized", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("object storage not configured, photo uploads disabled")
	}

	var scheduleCache cache.ScheduleCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisScheduleCache(cfg.Redis, log)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisCache.Close()
		scheduleCache = redisCache
		log.Info("schedule cache initialized", zap.String("addr", cfg.Redis.Addr))
	} else {
		log.Warn("redis not configured, schedule months are assembled on every read")
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:         repos,
		Logger:        log,
		Config:        cfg,
		FileStorage:   fileStorage,
		ScheduleCache: scheduleCache,
	})

	handler := rest.NewHandler(services, log, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("failed to stop server gracefully", zap.Error(err))
	}

	log.Info("server stopped")
}
