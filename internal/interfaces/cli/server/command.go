// Package server implements the `server` CLI command: configuration,
// wiring, and the HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	loanApp "libris/internal/application/loan"
	userApp "libris/internal/application/user"
	"libris/internal/infrastructure/auth"
	"libris/internal/infrastructure/config"
	"libris/internal/infrastructure/database"
	"libris/internal/infrastructure/repository"
	httpRouter "libris/internal/interfaces/http"
	"libris/internal/interfaces/http/handlers"
	"libris/internal/interfaces/http/middleware"
	"libris/internal/shared/authorization"
	"libris/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the libris HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Mode == "" {
		cfg.Server.Mode = mapEnvToGinMode(env)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(database.Get()); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log := logger.NewLogger()
	db := database.Get()

	userRepo := repository.NewUserRepository(db, log)
	authorRepo := repository.NewAuthorRepository(db, log)
	bookRepo := repository.NewBookRepository(db, log)
	loanRepo := repository.NewLoanRepository(db, log)

	tokens := auth.NewJWTCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)

	userService := userApp.NewService(userRepo, hasher, tokens, log)
	loanService := loanApp.NewService(loanRepo, bookRepo, userRepo, log)

	if cfg.Auth.SeedAdminAccount {
		if err := userService.EnsureAdmin(cmd.Context(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}
	}

	acl := authorization.FromConfig(&cfg.Authorization)
	gate := middleware.NewAuthMiddleware(tokens, acl, log)

	router := httpRouter.NewRouter(httpRouter.Deps{
		Config:  cfg,
		Logger:  log,
		Gate:    gate,
		Health:  handlers.NewHealthHandler(),
		Auth:    handlers.NewAuthHandler(userService, log),
		Users:   handlers.NewUserHandler(userService, log),
		Authors: handlers.NewAuthorHandler(authorRepo, log),
		Books:   handlers.NewBookHandler(bookRepo, log),
		Loans:   handlers.NewLoanHandler(loanService, log),
	})
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

// mapEnvToGinMode translates the deployment environment into a gin mode.
func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
