package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "assignhub/docs" // This is for Swagger
	"assignhub/internal/auth"
	"assignhub/internal/config"
	"assignhub/internal/database"
	"assignhub/internal/handlers"
	"assignhub/internal/logger"
	"assignhub/internal/middleware"
	"assignhub/internal/repository"
	"assignhub/internal/service"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title AssignHub API
// @version 1.0
// @description Backend API for the AssignHub anonymous assignment help platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logger
	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", cfg.Log.Level,
	)

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		err := db.Close()
		if err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established", "path", cfg.Database.Path)

	// Run database migrations
	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	assignmentRepo := repository.NewAssignmentRepository(db.DB)
	submissionRepo := repository.NewSubmissionRepository(db.DB)
	commentRepo := repository.NewDiscussionCommentRepository(db.DB)

	// Initialize services
	authService := auth.NewService(&cfg.JWT)
	authSvc := service.NewAuthService(userRepo, authService)
	assignmentService := service.NewAssignmentService(assignmentRepo)
	submissionService := service.NewSubmissionService(submissionRepo, assignmentRepo)
	leaderboardService := service.NewLeaderboardService(userRepo, submissionRepo)
	analyticsService := service.NewAnalyticsService(userRepo, assignmentRepo, submissionRepo)
	resolver := service.NewRepoUsernameResolver(userRepo)
	discussionService := service.NewDiscussionService(commentRepo, assignmentRepo, resolver)

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(authService)
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc, cfg)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	discussionHandler := handlers.NewDiscussionHandler(discussionService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Setup router
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/assignments", assignmentHandler.List)
	mux.HandleFunc("GET /api/v1/assignments/{id}", assignmentHandler.Get)
	mux.HandleFunc("GET /api/v1/assignments/{id}/comments", discussionHandler.List)
	mux.HandleFunc("GET /api/v1/leaderboard", leaderboardHandler.Get)
	mux.HandleFunc("GET /api/v1/analytics/summary", analyticsHandler.Summary)

	// Protected routes
	mux.Handle("GET /api/v1/users/profile", authMw.Authenticate(http.HandlerFunc(authHandler.Profile)))
	mux.Handle("POST /api/v1/assignments", authMw.Authenticate(http.HandlerFunc(assignmentHandler.Create)))
	mux.Handle("GET /api/v1/assignments/{id}/submissions", authMw.Authenticate(http.HandlerFunc(submissionHandler.ListByAssignment)))
	mux.Handle("POST /api/v1/assignments/{id}/submissions", authMw.Authenticate(http.HandlerFunc(submissionHandler.Create)))
	mux.Handle("POST /api/v1/submissions/{id}/rate", authMw.Authenticate(http.HandlerFunc(submissionHandler.Rate)))
	mux.Handle("POST /api/v1/assignments/{id}/comments", authMw.Authenticate(http.HandlerFunc(discussionHandler.Create)))

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, err := w.Write([]byte(`{"status":"unhealthy","database":"error"}`))
			if err != nil {
				slog.Error("Failed to write health check response", "error", err)
				return
			}
			return
		}
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"status":"healthy","version":"` + cfg.App.Version + `"}`))
		if err != nil {
			slog.Error("Failed to write health check response", "error", err)
			return
		}
	})

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Apply global middleware
	handler := middleware.LoggingMiddleware(
		middleware.SecurityHeaders(
			corsMw.Handler(
				rateLimiter.Limit(mux),
			),
		),
	)

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
