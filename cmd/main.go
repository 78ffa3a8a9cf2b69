package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/develop-free/server-site/config"
	"github.com/develop-free/server-site/db"
	"github.com/develop-free/server-site/internal/auth/handler"
	authrepo "github.com/develop-free/server-site/internal/auth/repository/postgres"
	"github.com/develop-free/server-site/internal/auth/service"
	recordshandler "github.com/develop-free/server-site/internal/records/handler"
	recordsrepo "github.com/develop-free/server-site/internal/records/repository/postgres"
	"github.com/develop-free/server-site/pkg/constant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := db.RunMigrations(cfg.DBURL); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := authrepo.NewUserRepository(pool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := service.NewUserService(userRepo, tokenService, logger)
	authHandler := handler.NewAuthHandler(userService, tokenService, cfg)

	recordsHandler := recordshandler.NewRecordsHandler(recordsrepo.NewRepository(pool))

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)
	recordshandler.RegisterRoutes(app, recordsHandler,
		authHandler.Authenticate,
		authHandler.RequireRole(constant.RoleTeacher, constant.RoleAdmin),
		authHandler.RequireRole(constant.RoleAdmin))

	logger.Info("server starting", slog.String("port", cfg.Port), slog.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
