package main

import (
	"context"
	"log"
	"time"

	"orgsite-backend/config"
	"orgsite-backend/internal/handler"
	"orgsite-backend/internal/redis"
	"orgsite-backend/internal/repository"
	"orgsite-backend/internal/server"
	"orgsite-backend/internal/services"
	"orgsite-backend/internal/storage"
	"orgsite-backend/pkg/database"
	"orgsite-backend/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	ctx := context.Background()
	s3Client, err := storage.NewClient(ctx, storage.S3Config{
		Region:     cfg.S3Region,
		Bucket:     cfg.S3Bucket,
		AccessKey:  cfg.S3AccessKey,
		SecretKey:  cfg.S3SecretKey,
		Endpoint:   cfg.S3Endpoint,
		PublicBase: cfg.S3PublicBase,
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	redisClient := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	statsCache := redis.NewStatsCache(redisClient, time.Duration(cfg.StatsCacheTTL)*time.Second)
	loginLimiter := redis.NewRateLimiter(redisClient, redis.DefaultRateLimitConfig())

	resourceRepo := repository.NewResourceRepository(db)
	publicationRepo := repository.NewPublicationRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	programRepo := repository.NewWorkProgramRepository(db)
	founderRepo := repository.NewFounderRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	merchandiseRepo := repository.NewMerchandiseRepository(db)
	memberRepo := repository.NewMemberStatsRepository(db)

	authService := services.NewAuthService(cfg)
	attachmentService := services.NewAttachmentService(resourceRepo, s3Client, l)
	publicationService := services.NewPublicationService(publicationRepo, s3Client, l)
	historyService := services.NewHistoryService(historyRepo)
	programService := services.NewWorkProgramService(programRepo)
	founderService := services.NewFounderService(founderRepo)
	boardService := services.NewBoardService(boardRepo)
	achievementService := services.NewAchievementService(achievementRepo)
	merchandiseService := services.NewMerchandiseService(merchandiseRepo)
	statsService := services.NewStatsService(memberRepo, programRepo, achievementRepo, statsCache, l)
	memberService := services.NewMemberStatsService(memberRepo, statsService)

	secureCookies := cfg.AppMode == server.ReleaseMode
	handlers := &server.Handlers{
		Auth:         handler.NewAuthHandler(authService, secureCookies),
		Resources:    handler.NewResourceHandler(attachmentService),
		Publications: handler.NewPublicationHandler(publicationService),
		History:      handler.NewHistoryHandler(historyService),
		WorkPrograms: handler.NewWorkProgramHandler(programService),
		Founders:     handler.NewFounderHandler(founderService),
		Board:        handler.NewBoardHandler(boardService),
		Achievements: handler.NewAchievementHandler(achievementService),
		Merchandise:  handler.NewMerchandiseHandler(merchandiseService),
		Stats:        handler.NewStatsHandler(statsService, memberService),
	}

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(handlers, authService, loginLimiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
