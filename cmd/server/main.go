// @title       Flex Fitness Buddy API
// @version     1.0
// @description Chat API of the Flex fitness coach.
// @BasePath    /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/flexfit/fitness-buddy/internal/api"
	"github.com/flexfit/fitness-buddy/internal/api/session"
	"github.com/flexfit/fitness-buddy/internal/core/domain"
	"github.com/flexfit/fitness-buddy/internal/core/service"
	"github.com/flexfit/fitness-buddy/internal/infrastructure/completion"
	"github.com/flexfit/fitness-buddy/internal/infrastructure/db/memory"
	"github.com/flexfit/fitness-buddy/internal/pkg/config"
	"github.com/flexfit/fitness-buddy/internal/pkg/password"
	"github.com/flexfit/fitness-buddy/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "flex",
	})

	secret, generated, err := cfg.Session.SigningSecret()
	if err != nil {
		log.Fatal().Err(err).Msg("session secret")
	}
	if generated {
		log.Warn().Msg("SESSION_SECRET not set; sessions will not survive a restart")
	}

	hasher, err := password.New(cfg.Session.Hasher)
	if err != nil {
		log.Fatal().Err(err).Msg("password hasher")
	}

	persona := domain.DefaultPersona
	if cfg.Persona.Name != "" {
		persona.Name = cfg.Persona.Name
	}

	client := completion.NewClient(completion.Config{
		APIKey:  cfg.Completion.APIKey,
		BaseURL: cfg.Completion.BaseURL,
		Timeout: cfg.Completion.Timeout,
	})

	authService := service.NewAuthService(memory.NewAuthRepository(), hasher, secret, cfg.Session.TokenTTL, log)
	chatService := service.NewChatService(client, persona, cfg.Completion.Model, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:  authService,
		ChatService:  chatService,
		Completion:   client,
		SessionStore: session.NewStore(secret, cfg.Session.MaxAge, cfg.Session.Secure),
		Persona:      persona,
		Logger:       log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("model", cfg.Completion.Model).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
