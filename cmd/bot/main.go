package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	opsapi "github.com/codevote/codevote/internal/api/ops"
	"github.com/codevote/codevote/internal/application/game"
	appOps "github.com/codevote/codevote/internal/application/ops"
	"github.com/codevote/codevote/internal/config"
	"github.com/codevote/codevote/internal/generator"
	"github.com/codevote/codevote/internal/infrastructure/postgres"
	"github.com/codevote/codevote/internal/infrastructure/scheduler"
	"github.com/codevote/codevote/internal/logging"
	"github.com/codevote/codevote/internal/transport/telegram"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db error")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
		logger.Fatal().Err(err).Msg("migration error")
	}

	// services
	txManager := postgres.NewTxManager(pool)
	gameSvc := game.NewService(txManager, cfg.MaxDuplicateOptions, logger)
	opsSvc := appOps.NewService(txManager, logger)

	oracle := buildOracle(cfg, logger)

	// telegram
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram error")
	}
	logger.Info().Str("username", api.Self.UserName).Msg("bot authorized")

	bot := telegram.NewBot(api, gameSvc, opsSvc, oracle, telegram.Config{
		OwnerIDs:       cfg.OwnerIDs,
		PollTimeout:    cfg.PollTimeout,
		RecentLogLimit: cfg.RecentLogLimit,
	}, logger)

	// background loops
	sweeper := scheduler.NewSweeper(gameSvc, opsSvc, bot, cfg.SweepInterval, cfg.SweepBatch, logger)
	go sweeper.Run(ctx)
	go bot.Run(ctx, api)

	// ops API server
	opsServer := opsapi.NewServer(opsSvc)
	httpServer := &http.Server{
		Addr:         cfg.OpsServerAddr,
		Handler:      opsServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", cfg.OpsServerAddr).Msg("ops server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ops server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("ops server shutdown")
	}
}

func buildOracle(cfg *config.Config, logger zerolog.Logger) generator.Oracle {
	if cfg.OracleBaseURL == "" {
		logger.Warn().Msg("no oracle endpoint configured, serving fixed candidate lines")
		return generator.NewFixedOracle()
	}
	client, err := generator.NewClient(generator.ClientConfig{
		BaseURL: cfg.OracleBaseURL,
		APIKey:  cfg.OracleAPIKey,
		Model:   cfg.OracleModel,
		Timeout: cfg.OracleTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("oracle client error")
	}
	return generator.NewLLMOracle(client, logger)
}
