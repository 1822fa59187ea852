package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "rakshak-backend/internal/api/http"
	"rakshak-backend/internal/config"
	"rakshak-backend/internal/jobs"
	"rakshak-backend/internal/logger"
	"rakshak-backend/internal/repository/postgres"
	"rakshak-backend/internal/scheduler"
	"rakshak-backend/internal/security"
	"rakshak-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rakshak Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// Initialize Services
	accountSvc := service.NewAccountService(store.UserRepository, tokenManager)
	disasterSvc := service.NewDisasterService(store.DisasterRepository)
	allocationSvc := service.NewAllocationService(
		store.ResourceRequestRepository,
		store.ResourceRepository,
		store.UserRepository,
		emailSvc,
	)
	taskSvc := service.NewTaskService(
		store.TaskRepository,
		store.TaskRequestRepository,
		store.UserRepository,
	)
	volunteerSvc := service.NewVolunteerService(
		store.VolunteerApplicationRepository,
		store.UserRepository,
		emailSvc,
	)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	resetSvc := service.NewPasswordResetService(
		store.UserRepository,
		store.PasswordResetTokenRepository,
		emailSvc,
	)

	// Initialize HTTP handlers and router
	handlers := httpapi.Handlers{
		Users:         httpapi.NewUserHandler(accountSvc),
		Disasters:     httpapi.NewDisasterHandler(disasterSvc),
		Resources:     httpapi.NewResourceHandler(allocationSvc),
		Tasks:         httpapi.NewTaskHandler(taskSvc),
		Applications:  httpapi.NewVolunteerApplicationHandler(volunteerSvc),
		Notifications: httpapi.NewNotificationHandler(notificationSvc),
		Auth:          httpapi.NewAuthHandler(resetSvc),
	}
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager, cfg.JWT.Enforce)
	router := httpapi.NewRouter(handlers, authMiddleware)

	// Start maintenance scheduler alongside the HTTP server
	jobRunner := jobs.NewJobRunner(db, store, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
