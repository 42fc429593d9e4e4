package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	httpapi "hostelhub-backend/internal/api/http"
	"hostelhub-backend/internal/config"
	"hostelhub-backend/internal/domain"
	"hostelhub-backend/internal/lock"
	"hostelhub-backend/internal/logger"
	"hostelhub-backend/internal/repository/postgres"
	"hostelhub-backend/internal/security"
	"hostelhub-backend/internal/service"
	"hostelhub-backend/internal/session"

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
	logger.Info("Starting HostelHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Seed the admin account on first run
	if err := seedAdmin(store, cfg); err != nil {
		logger.Error("Failed to seed admin account", "error", err)
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// Sessions and locks: Redis when configured, in-memory otherwise
	tokenExpiry := time.Duration(cfg.JWT.AccessTokenExpiry) * time.Minute

	var (
		sessions session.Store
		locker   lock.Locker
	)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("Failed to ping redis", "error", err)
			log.Fatalf("Failed to ping redis: %v", err)
		}
		logger.Info("Redis connection established", "addr", cfg.Redis.Addr)
		sessions = session.NewRedisStore(client, tokenExpiry)
		locker = lock.NewRedisLocker(client)
	} else {
		logger.Info("Redis not configured, using in-memory sessions and locks")
		sessions = session.NewMemoryStore()
		locker = lock.NewMemoryLocker()
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, tokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg)
	signupSvc := service.NewSignupService(store.PendingSignupRepository, store.AccountRepository, locker, emailSvc)
	moderationSvc := service.NewModerationService(
		store.AccountRepository,
		locker,
		emailSvc,
		store.IssueRepository,
		store.OrderRepository,
		store.FeedbackRepository,
	)
	authSvc := service.NewAuthService(store.AccountRepository, store.AdminRepository, sessions, tokenManager, locker)
	activitySvc := service.NewActivityService(store.AccountRepository, store.IssueRepository, store.OrderRepository, store.FeedbackRepository)
	issueSvc := service.NewIssueService(store.IssueRepository)
	cafeteriaSvc := service.NewCafeteriaService(store.OrderRepository)
	feedbackSvc := service.NewFeedbackService(store.FeedbackRepository)
	lostFoundSvc := service.NewLostFoundService(store.LostFoundRepository)
	transportSvc := service.NewTransportService(store.RideRepository, locker)

	// Initialize HTTP surface
	authMw := httpapi.NewAuthMiddleware(tokenManager, sessions)
	authHandler := httpapi.NewAuthHandler(signupSvc, authSvc)
	adminHandler := httpapi.NewAdminHandler(signupSvc, moderationSvc, authSvc, activitySvc, issueSvc, cafeteriaSvc, lostFoundSvc)
	studentHandler := httpapi.NewStudentHandler(issueSvc, cafeteriaSvc, feedbackSvc, lostFoundSvc, transportSvc)

	router := httpapi.NewRouter(authHandler, adminHandler, studentHandler, authMw)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

// seedAdmin inserts the admin account when the table is empty. The
// configured credentials win over the built-in defaults.
func seedAdmin(store *postgres.Store, cfg *config.Config) error {
	username := cfg.Admin.Username
	if username == "" {
		username = domain.DefaultAdminUsername
	}
	password := cfg.Admin.Password
	if password == "" {
		password = domain.DefaultAdminPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return store.AdminRepository.Seed(context.Background(), &domain.AdminAccount{
		Username:     username,
		PasswordHash: string(hash),
	})
}
