package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/edupoint/schooladmin/internal/app/controllers"
	"github.com/edupoint/schooladmin/internal/app/migrations"
	"github.com/edupoint/schooladmin/internal/app/repositories"
	"github.com/edupoint/schooladmin/internal/app/routes"
	"github.com/edupoint/schooladmin/internal/app/services"
	"github.com/edupoint/schooladmin/internal/config"
	"github.com/edupoint/schooladmin/internal/db"
	"github.com/edupoint/schooladmin/internal/middleware"
	"github.com/edupoint/schooladmin/internal/pkg/auth"
	"github.com/edupoint/schooladmin/internal/pkg/email"
	"github.com/edupoint/schooladmin/internal/pkg/logger"
	"github.com/edupoint/schooladmin/internal/seed"
	"github.com/edupoint/schooladmin/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App holds the initialized application.
type App struct {
	Config *config.Config
	Pool   *pgxpool.Pool
	Server *server.Server
}

// Initialize loads configuration, connects to the database, runs migrations
// and seeds, and assembles the HTTP server.
func Initialize(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})

	pool, err := db.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migrations.Run(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := seed.Run(ctx, pool, os.Getenv("ADMIN_PASSWORD")); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.TokenExpiry,
		TokenIssuer: cfg.JWT.Issuer,
	})
	mailer := email.NewService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  "School Administration",
		FromEmail: cfg.SMTP.FromAddress,
		BaseURL:   cfg.SMTP.AppBaseURL,
	}, logger.Get())

	repos := repositories.NewRepositories(pool)
	svcs := services.NewServices(repos, mailer, logger.Get())
	ctrls := controllers.NewControllers(svcs)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())
	routes.SetupRoutes(router, ctrls, jwtService)

	return &App{
		Config: cfg,
		Pool:   pool,
		Server: server.New(&cfg.Server, router),
	}, nil
}

// Close releases application resources.
func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}
