package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/validation"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Companies post jobs and review applicants; candidates browse, upload resumes and apply.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.AppEnv)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "env", cfg.AppEnv)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	// 4. Sessions: Redis when configured, otherwise in-process
	var sessionStore security.SessionStore = security.NewMemorySessionStore()
	redisClient, err := redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	switch {
	case err == nil:
		defer redisClient.Close()
		sessionStore = security.NewRedisSessionStore(redisClient)
		logger.Log.Info("Session store: redis")
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Warn("Session store: in-memory (sessions are lost on restart)")
	default:
		logger.Log.Error("Redis unavailable, falling back to in-memory sessions", "error", err)
	}
	sessions := security.NewSessionManager(cfg.JWTSecret, cfg.SessionTTL, sessionStore)

	// 5. Blob storage
	store, err := newFileStore(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to set up file storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	identityRepo := postgres.NewIdentityRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyProfileRepo := postgres.NewCompanyProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	reviewRepo := postgres.NewReviewRepository(dbPool)

	// 7. Setup UseCases
	validate := validation.Validator()
	audit := security.NewSecurityLogger("jobboard", cfg.AppEnv)
	defer func() { _ = audit.Sync() }()

	authUC := usecase.NewAuthUsecase(identityRepo, security.NewPasswordHasher(0), sessions, audit, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, companyProfileRepo, candidateRepo, applicationRepo, validate, cfg.JobsPageSize)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo, companyProfileRepo, store, audit, validate)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, candidateRepo, store, audit)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobRepo, applicationRepo, resumeRepo, cfg.JobsPageSize)
	companyUC := usecase.NewCompanyUsecase(companyProfileRepo, jobRepo, applicationRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, validate, cfg.LandingReviewLimit)

	healthDeps := map[string]usecase.Pinger{"database": dbPool}
	if redisClient != nil {
		healthDeps["redis"] = redisPinger(redisClient)
	}
	healthUC := usecase.NewHealthUsecase(healthDeps)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		ResumeUC:      resumeUC,
		CandidateUC:   candidateUC,
		CompanyUC:     companyUC,
		ReviewUC:      reviewUC,
		HealthUC:      healthUC,
		FrontendURL:   cfg.FrontendURL,
		Production:    cfg.IsProduction(),
		SecureCookie:  cfg.SessionCookieSecure,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newFileStore(ctx context.Context, cfg *config.Config) (domain.FileStore, error) {
	switch cfg.StorageDriver {
	case "s3":
		return storage.NewS3Store(ctx, storage.S3Config{
			Provider:        storage.S3Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			WasabiEndpoint:  cfg.WasabiEndpoint,
		})
	default:
		return storage.NewLocalStore(cfg.StorageLocalDir)
	}
}

func redisPinger(client *goredis.Client) usecase.Pinger {
	return usecase.PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}
