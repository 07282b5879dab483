package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/dkeye/Debate/internal/adapters/http"
	"github.com/dkeye/Debate/internal/adapters/oracle"
	wssignal "github.com/dkeye/Debate/internal/adapters/signal"
	"github.com/dkeye/Debate/internal/app"
	"github.com/dkeye/Debate/internal/config"
	"github.com/dkeye/Debate/internal/core"
	"github.com/dkeye/Debate/internal/moderation"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping info")
	}
	if cfg.Secret == "" {
		cfg.Secret = uuid.NewString()
		log.Warn().Msg("session secret not set, using a random one")
	}
	if cfg.Oracle.APIKey == "" {
		log.Warn().Msg("oracle api key not set, fact checks will fail")
	}

	orch := app.NewOrchestrator(oracle.NewCohere(&http.Client{}, oracle.Config{
		BaseURL: cfg.Oracle.BaseURL,
		APIKey:  cfg.Oracle.APIKey,
		Model:   cfg.Oracle.Model,
		Timeout: cfg.Oracle.Timeout,
	}))
	orch.JoinNotice = app.JoinNotice(cfg.JoinNotice)
	orch.Quorum = core.Quorum{Threshold: cfg.Quorum, Source: core.QuorumSource(cfg.QuorumSource)}

	mod, err := moderation.NewModerator(cfg.CensoredWords, cfg.MaskRune())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build moderator")
	}
	if mod != nil {
		orch.Censor = mod
	}

	limiter := wssignal.NewSessionRateLimiter(cfg.FactCheck.Limit, cfg.FactCheck.Interval)
	r := router.SetupRouter(ctx, cfg, orch, limiter)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Debate server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
