package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pagecraft-backend/internal/config"
	"pagecraft-backend/internal/middleware"
	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/repository"
	"pagecraft-backend/internal/schema"
	"pagecraft-backend/internal/seed"
	"pagecraft-backend/internal/service"
	"pagecraft-backend/pkg/cache"
	"pagecraft-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db       *gorm.DB
	cache    *cache.Cache
	registry *schema.Registry

	repositories repositoryContainer
	services     serviceContainer

	rateLimits *middleware.RateLimitManager
	router     *gin.Engine
	server     *http.Server
}

type repositoryContainer struct {
	User    repository.UserRepository
	Page    repository.PageRepository
	Setting repository.SettingRepository
}

type serviceContainer struct {
	Auth     *service.AuthService
	Language *service.LanguageService
	Page     *service.PageService
	Builder  *service.BuilderService
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{
		cfg:      cfg,
		registry: schema.DefaultRegistry(),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	app.initCache()
	app.initRepositories()
	app.initServices()

	seed.EnsureAdminUser(app.services.Auth, cfg.AdminEmail, cfg.AdminPassword)
	seed.EnsureHomePage(app.repositories.Page, app.registry, app.services.Language.DefaultLanguage())

	app.rateLimits = middleware.NewRateLimitManager(context.Background())
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimits != nil {
		if err := a.rateLimits.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limit manager", nil)
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.User{},
		&models.Page{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

func (a *Application) createIndexes() error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_pages_published ON pages(published) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_path ON pages(path) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_order ON pages(\"order\" ASC)",
		"CREATE INDEX IF NOT EXISTS idx_pages_sections ON pages USING GIN (sections)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() {
	if !a.cfg.EnableRedis {
		a.cache, _ = cache.NewCache("", false)
		return
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		logger.Error(err, "Failed to connect to Redis, caching disabled", nil)
		c, _ = cache.NewCache("", false)
	}
	a.cache = c
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		User:    repository.NewUserRepository(a.db),
		Page:    repository.NewPageRepository(a.db),
		Setting: repository.NewSettingRepository(a.db),
	}
}

func (a *Application) initServices() {
	language := service.NewLanguageService(a.cfg, a.repositories.Setting)

	a.services = serviceContainer{
		Auth:     service.NewAuthService(a.repositories.User, a.cfg.JWTSecret),
		Language: language,
		Page:     service.NewPageService(a.repositories.Page, a.registry, language, a.cache),
		Builder:  service.NewBuilderService(a.repositories.Page, a.registry, language, a.cache),
	}
}
