// cmd/dialog-memory-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/dialog-memory/internal/api/rest/v1"
	"github.com/MGTheTrain/dialog-memory/internal/app"
	"github.com/MGTheTrain/dialog-memory/internal/domain/statements"
	"github.com/MGTheTrain/dialog-memory/internal/infrastructure/persistence"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/config"
	"github.com/MGTheTrain/dialog-memory/internal/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the variables may come from the environment
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	statement statements.StatementService
	response  statements.ResponseService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	statementRepo, err := persistence.NewGormStatementRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create statement repository: %w", err)
	}

	responseRepo, err := persistence.NewGormResponseRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create response repository: %w", err)
	}

	statementService, err := app.NewStatementService(statementRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create statement service: %w", err)
	}

	responseService, err := app.NewResponseService(statementRepo, responseRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create response service: %w", err)
	}

	return &appDependencies{
		db:        db,
		statement: statementService,
		response:  responseService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.statement, deps.response)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
