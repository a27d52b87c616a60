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

	"go-candidate-backend/config"
	_ "go-candidate-backend/docs" // Important for Swagger
	v1 "go-candidate-backend/internal/delivery/http/v1"
	"go-candidate-backend/internal/repository/mongodb"
	"go-candidate-backend/internal/usecase"
	"go-candidate-backend/pkg/auth"
	"go-candidate-backend/pkg/database"
	"go-candidate-backend/pkg/logger"
	"go-candidate-backend/pkg/report"
	"go-candidate-backend/pkg/security"
	"go-candidate-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

//go:generate swag init -d ../../ -g cmd/api/main.go -o ../../docs

// @title           Candidate Registry API
// @version         1.0
// @description     User accounts and candidate profiles with bearer token access control.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting candidate backend", "port", cfg.Port)

	// 3. Setup Database
	ctx := context.Background()
	store, err := database.NewMongoConnection(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := mongodb.EnsureIndexes(ctx, store.Database()); err != nil {
		logger.Log.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	// 4. Setup Repositories
	userRepo := mongodb.NewUserRepository(store.Database())
	candidateRepo := mongodb.NewCandidateRepository(store.Database())

	// 5. Setup Auth
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, time.Duration(cfg.AccessTokenExpireMinutes)*time.Minute)
	if err != nil {
		logger.Log.Error("Failed to create token service", "error", err)
		os.Exit(1)
	}
	secLog := security.NewSecurityLogger("candidate-backend")
	defer secLog.Sync()

	// 6. Setup Report Sinks
	sinks := []report.Sink{storage.NewLocalSink(cfg.ReportDir)}
	if cfg.ReportS3Bucket != "" {
		s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
			Region:          cfg.ReportS3Region,
			Endpoint:        cfg.ReportS3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
		})
		if err != nil {
			logger.Log.Error("Failed to create S3 client", "error", err)
			os.Exit(1)
		}
		sinks = append(sinks, storage.NewS3Sink(s3Client, cfg.ReportS3Bucket, "reports/"))
	}
	exporter := report.NewExporter(sinks...)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, hasher, tokens, secLog)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, exporter)
	healthUC := usecase.NewHealthUsecase(store)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		CandidateUC:    candidateUC,
		HealthUC:       healthUC,
		Tokens:         tokens,
		SecurityLogger: secLog,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
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
	if err := store.Close(shutdownCtx); err != nil {
		logger.Log.Error("Failed to close database", "error", err)
	}

	logger.Log.Info("Server exiting")
}
