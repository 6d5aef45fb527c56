package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolioBackend/internal/config"
	"portfolioBackend/internal/handler"
	"portfolioBackend/internal/repository"
	"portfolioBackend/internal/security"
	"portfolioBackend/internal/service"
	"portfolioBackend/pkg/database"
	"portfolioBackend/pkg/redis"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	rateLimiter := security.NewRateLimiter(security.RateLimiterConfig{
		Redis:  redisClient,
		Limit:  cfg.RateLimitRequests,
		Window: cfg.RateLimitWindow,
	})

	accountRepo := repository.NewAccountRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	authService := service.NewAuthService(cfg, accountRepo)
	accountService := service.NewAccountService(accountRepo)
	skillService := service.NewSkillService(skillRepo)
	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(cfg)

	seedAdmin(accountService, cfg)

	userHandler := handler.NewUserHandler(authService, accountService, cfg)
	skillHandler := handler.NewSkillHandler(skillService)
	projectHandler := handler.NewProjectHandler(projectService)
	contactHandler := handler.NewContactHandler(contactService)

	router := setupRouter(cfg, authService, accountRepo, rateLimiter, userHandler, skillHandler, projectHandler, contactHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server startup failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func seedAdmin(accountService service.AccountService, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin provisioning")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := accountService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Error().Err(err).Msg("admin provisioning failed")
	}
}
