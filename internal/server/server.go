package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orgsite-backend/config"
	"orgsite-backend/internal/handler"
	"orgsite-backend/internal/middleware"
	"orgsite-backend/internal/redis"
	"orgsite-backend/internal/services"
	"orgsite-backend/internal/transport/httpdto"
	"orgsite-backend/pkg/database"
	"orgsite-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
	db         *gorm.DB
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

// Handlers bundles everything SetupRoutes mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Resources    *handler.ResourceHandler
	Publications *handler.PublicationHandler
	History      *handler.HistoryHandler
	WorkPrograms *handler.WorkProgramHandler
	Founders     *handler.FounderHandler
	Board        *handler.BoardHandler
	Achievements *handler.AchievementHandler
	Merchandise  *handler.MerchandiseHandler
	Stats        *handler.StatsHandler
}

func New(cfg *config.Config, l *logger.Logger, db *gorm.DB) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
		db:     db,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, loginLimiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSAllowOrigin))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(s.db); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	admin := middleware.AdminAuthMiddleware(authService)

	auth := s.engine.Group("/v1/auth")
	{
		login := handlers.Auth.Login
		if loginLimiter != nil {
			auth.POST("/login", middleware.LoginRateLimitMiddleware(loginLimiter), login)
		} else {
			auth.POST("/login", login)
		}
		auth.POST("/logout", handlers.Auth.Logout)
		auth.GET("/check", handlers.Auth.Check)
	}

	resources := s.engine.Group("/v1/resources")
	{
		resources.GET("", handlers.Resources.List)
		resources.GET("/:id", handlers.Resources.GetByID)
		resources.POST("", admin, handlers.Resources.Create)
		resources.PUT("/:id", admin, handlers.Resources.Update)
		resources.DELETE("/:id", admin, handlers.Resources.Delete)
	}

	publications := s.engine.Group("/v1/publications")
	{
		publications.GET("", handlers.Publications.List)
		publications.POST("", admin, handlers.Publications.Create)
		publications.PUT("/:id", admin, handlers.Publications.Update)
		publications.DELETE("/:id", admin, handlers.Publications.Delete)
	}

	history := s.engine.Group("/v1/history")
	{
		history.GET("", handlers.History.List)
		history.POST("", admin, handlers.History.Create)
		history.PUT("/:id", admin, handlers.History.Update)
		history.DELETE("/:id", admin, handlers.History.Delete)
	}

	programs := s.engine.Group("/v1/work-programs")
	{
		programs.GET("", handlers.WorkPrograms.List)
		programs.POST("", admin, handlers.WorkPrograms.Create)
		programs.PUT("/:id", admin, handlers.WorkPrograms.Update)
		programs.DELETE("/:id", admin, handlers.WorkPrograms.Delete)
	}

	founders := s.engine.Group("/v1/founders")
	{
		founders.GET("", handlers.Founders.List)
		founders.POST("", admin, handlers.Founders.Create)
		founders.PUT("/:id", admin, handlers.Founders.Update)
		founders.DELETE("/:id", admin, handlers.Founders.Delete)
	}

	board := s.engine.Group("/v1/board")
	{
		board.GET("/members", handlers.Board.ListMembers)
		board.POST("/members", admin, handlers.Board.CreateMember)
		board.PUT("/members/:id", admin, handlers.Board.UpdateMember)
		board.DELETE("/members/:id", admin, handlers.Board.DeleteMember)
		board.GET("/term", handlers.Board.GetTerm)
		board.PUT("/term", admin, handlers.Board.SetTerm)
	}

	achievements := s.engine.Group("/v1/achievements")
	{
		achievements.GET("", handlers.Achievements.List)
		achievements.POST("", admin, handlers.Achievements.Create)
		achievements.PUT("/:id", admin, handlers.Achievements.Update)
		achievements.DELETE("/:id", admin, handlers.Achievements.Delete)
	}

	merchandise := s.engine.Group("/v1/merchandise")
	{
		merchandise.GET("", handlers.Merchandise.List)
		merchandise.POST("", admin, handlers.Merchandise.Create)
		merchandise.PUT("/:id", admin, handlers.Merchandise.Update)
		merchandise.DELETE("/:id", admin, handlers.Merchandise.Delete)
	}

	s.engine.GET("/v1/stats", handlers.Stats.Get)
	s.engine.GET("/v1/member-stats", handlers.Stats.GetMemberStats)
	s.engine.PUT("/v1/member-stats", admin, handlers.Stats.UpdateMemberStats)
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
