package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"loan-calculator/config"
	httpLayer "loan-calculator/http"
	"loan-calculator/repository"
	"loan-calculator/service"
)

func (cli *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  cli.runServe,
	}
}

func (cli *CLI) runServe(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log, os.Stdout)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	cache, closeCache, err := newCache(ctx, cfg.Cache, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Dependencies{
		LoanService:           service.NewLoanService(cache, cfg.Cache.TTL),
		RecommendationService: service.NewTenureRecommendationService(),
		RateLimiter:           rateLimiter,
		Logger:                logger,
	})

	server := httpLayer.NewServer(cfg.Server.Addr, router, logger, cfg.Server.ShutdownTimeout)
	return server.Run(ctx)
}

func newCache(
	ctx context.Context,
	cfg config.CacheConfig,
	logger zerolog.Logger,
) (repository.CacheRepository, func(), error) {
	switch cfg.Driver {
	case "redis":
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		if err := redisCache.Ping(ctx); err != nil {
			_ = redisCache.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache")
		return redisCache, func() { _ = redisCache.Close() }, nil
	case "none":
		logger.Info().Msg("result cache disabled")
		return nil, func() {}, nil
	default:
		memoryCache := repository.NewMemoryCache(cfg.MaxEntries, cfg.SweepInterval)
		logger.Info().Int("max_entries", cfg.MaxEntries).Dur("sweep_interval", cfg.SweepInterval).Msg("using memory cache")
		return memoryCache, memoryCache.Stop, nil
	}
}
