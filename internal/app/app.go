package app

import (
	"fmt"

	"careernode_backend/database"
	"careernode_backend/internal/auth"
	"careernode_backend/internal/config"
	"careernode_backend/internal/email"
	"careernode_backend/internal/handlers"
	"careernode_backend/internal/logger"
	"careernode_backend/internal/middleware"
	"careernode_backend/internal/models"
	"careernode_backend/internal/repositories"
	"careernode_backend/internal/routes"
	"careernode_backend/internal/services"
	"careernode_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run starts the HTTP server and blocks
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	router, err := SetupRouter(cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the fully wired gin engine. Tests call this directly
// against their own database.
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	db, err := OpenDatabase(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	svc := initializeServices(cfg)

	if err := seedFirstAdmin(db, cfg); err != nil {
		return nil, fmt.Errorf("seed first admin: %w", err)
	}
	if err := svc.CategoryService.SeedDefaults(db); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	h := handlers.NewAppHandlers(svc, validator.New())

	return initializeGinRouter(cfg, db, h), nil
}

// OpenDatabase opens the postgres pool. TranslateError is required so
// unique-index violations surface as gorm.ErrDuplicatedKey.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	categoryRepo := repositories.NewCategoryRepository()

	var emailProvider email.Provider = &email.NoopProvider{}
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	}

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, refreshTokenRepo, emailProvider),
		UserService:        services.NewUserService(userRepo),
		JobService:         services.NewJobService(jobRepo, categoryRepo, applicationRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo),
		CategoryService:    services.NewCategoryService(categoryRepo),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, h *handlers.AppHandlers) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))

	routes.RegisterRoutes(router, h)

	return router
}

// seedFirstAdmin creates the admin account on an empty deployment.
// Registration never produces admins, so this is the only way in.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hashedPassword,
		FirstName:    "Admin",
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("Seeded first admin account", "email", cfg.FirstAdminEmail)
	return nil
}
