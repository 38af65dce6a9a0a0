package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/talentbridge/recruitment-backend/internal/auth"
	"github.com/talentbridge/recruitment-backend/internal/config"
	"github.com/talentbridge/recruitment-backend/internal/database"
	"github.com/talentbridge/recruitment-backend/internal/handlers"
	"github.com/talentbridge/recruitment-backend/internal/middleware"
	"github.com/talentbridge/recruitment-backend/internal/models"
	"github.com/talentbridge/recruitment-backend/internal/notify"
	"github.com/talentbridge/recruitment-backend/internal/repository"
	"github.com/talentbridge/recruitment-backend/internal/services"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using environment as-is")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.PostgresDSN, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	var notifier notify.Notifier
	if cfg.NATSURL != "" {
		notifier, err = notify.NewNATSNotifier(cfg.NATSURL, cfg.NATSConnTimeout, logger)
		if err != nil {
			logger.Fatal("failed to connect to NATS", zap.Error(err))
		}
	} else {
		notifier = notify.NewNoopNotifier(logger)
	}
	defer notifier.Close()

	var limiter *middleware.RedisLimiter
	if cfg.RedisAddr != "" {
		limiter = middleware.NewRedisLimiter(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))
	}

	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	tokens := auth.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)

	jobService := services.NewJobService(jobRepo, logger)
	applicationService := services.NewApplicationService(applicationRepo, jobService, accountRepo, logger)
	interviewService := services.NewInterviewService(interviewRepo, applicationService, notifier, cfg.NotifyTimeout, logger)
	accountService := services.NewAccountService(accountRepo, tokens, logger)

	authHandler := handlers.NewAuthHandler(accountService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		authGroup.Use(middleware.RateLimit(limiter, 10, time.Minute))
		{
			authGroup.POST("/candidate/register", authHandler.RegisterCandidate)
			authGroup.POST("/candidate/login", authHandler.LoginCandidate)
			authGroup.POST("/employer/register", authHandler.RegisterEmployer)
			authGroup.POST("/employer/login", authHandler.LoginEmployer)
		}

		// Public surface: published postings only.
		api.GET("/jobs", jobHandler.ListPublic)
		api.GET("/jobs/:id", jobHandler.GetPublic)

		candidate := api.Group("/candidate")
		candidate.Use(auth.RequireAuth(tokens), auth.RequireRole(models.RoleCandidate))
		{
			candidate.POST("/applications", middleware.RateLimit(limiter, 30, time.Minute), applicationHandler.Submit)
			candidate.GET("/applications", applicationHandler.List)
			candidate.GET("/applications/:id", applicationHandler.Get)
		}

		employer := api.Group("/employer")
		employer.Use(auth.RequireAuth(tokens), auth.RequireRole(models.RoleHR, models.RoleTPNS))
		{
			employer.POST("/jobs", jobHandler.Create)
			employer.GET("/jobs", jobHandler.ListMine)
			employer.GET("/jobs/pending", jobHandler.PendingQueue)
			employer.PUT("/jobs/:id", jobHandler.Edit)
			employer.POST("/jobs/:id/submit", jobHandler.SubmitForApproval)
			employer.POST("/jobs/:id/approve", jobHandler.Approve)
			employer.POST("/jobs/:id/reject", jobHandler.Reject)
			employer.POST("/jobs/:id/close", jobHandler.Close)
			employer.DELETE("/jobs/:id", jobHandler.Delete)
			employer.GET("/jobs/:id/applications/count", applicationHandler.CountByJob)

			employer.GET("/applications", applicationHandler.List)
			employer.GET("/applications/:id", applicationHandler.Get)
			employer.PUT("/applications/:id/status", applicationHandler.UpdateStatus)

			employer.POST("/interviews", interviewHandler.Create)
			employer.GET("/interviews", interviewHandler.List)
			employer.GET("/interviews/stats", interviewHandler.Stats)
			employer.PUT("/interviews/:id", interviewHandler.Update)
			employer.DELETE("/interviews/:id", interviewHandler.Delete)
		}
	}

	logger.Info("server starting", zap.String("port", cfg.HTTPPort))
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
