package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/monosim/internal/common/clock"
	"github.com/KirkDiggler/monosim/internal/common/uuid"
	"github.com/KirkDiggler/monosim/internal/config"
	"github.com/KirkDiggler/monosim/internal/repositories/game"
	"github.com/KirkDiggler/monosim/internal/repositories/ledger"
	"github.com/KirkDiggler/monosim/internal/repositories/player"
	"github.com/KirkDiggler/monosim/internal/repositories/result"
	gameService "github.com/KirkDiggler/monosim/internal/services/game"
	"github.com/KirkDiggler/monosim/internal/services/messaging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Redis ---
	rdb, err := openRedis(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer rdb.Close()
	logger.Info("connected to redis", "addr", cfg.RedisAddr)

	// --- SQLite ---
	db, err := result.Open(ctx, cfg.ResultsDB)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	resultRepo, err := result.NewSQLite(ctx, &result.Config{DB: db})
	if err != nil {
		return fmt.Errorf("creating result repository: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.ResultsDB)

	svc, err := newService(cfg, rdb, resultRepo, logger)
	if err != nil {
		return err
	}

	msgs, err := messaging.New(&messaging.Config{})
	if err != nil {
		return fmt.Errorf("creating messaging service: %w", err)
	}
	recap := &recapper{games: svc, messages: msgs, logger: logger}

	// --- Run ---
	start := time.Now()
	var failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed(i)
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			output, err := svc.Simulate(ctx, &gameService.SimulateInput{
				Seed:        seed,
				PlayerNames: cfg.PlayerNames(),
				MaxRounds:   cfg.MaxRounds,
			})
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				// One broken game does not stop the batch
				recap.failure(ctx, seed, err)
				failed.Add(1)
				return nil
			}
			if err := recap.result(ctx, output.Game, output.Result); err != nil {
				logger.Warn("recap failed", "game", output.Game.ID, "error", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	summary, err := svc.Summarize(ctx, &gameService.SummarizeInput{})
	if err != nil {
		return fmt.Errorf("summarizing results: %w", err)
	}

	logger.Info("batch finished",
		"games", cfg.Games,
		"failed", failed.Load(),
		"elapsed", time.Since(start).String(),
	)

	// Totals cover every result stored in RESULTS_DB, not only this batch
	attrs := []any{
		"results_db", cfg.ResultsDB,
		"total_undecided", summary.Undecided,
	}
	for name, wins := range summary.Wins {
		attrs = append(attrs, slog.Int("total_wins."+name, wins))
	}
	logger.Info("stored results", attrs...)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d games failed", n, cfg.Games)
	}
	return nil
}

func newService(cfg *config.Config, rdb *redis.Client, resultRepo result.Repository, logger *slog.Logger) (gameService.Service, error) {
	gameRepo, err := game.NewRedis(&game.Config{RedisClient: rdb})
	if err != nil {
		return nil, fmt.Errorf("creating game repository: %w", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{RedisClient: rdb})
	if err != nil {
		return nil, fmt.Errorf("creating player repository: %w", err)
	}

	ledgerRepo, err := ledger.NewRedis(&ledger.Config{RedisClient: rdb})
	if err != nil {
		return nil, fmt.Errorf("creating ledger repository: %w", err)
	}

	svc, err := gameService.New(&gameService.Config{
		MaxPlayers:    cfg.Players,
		MaxRounds:     cfg.MaxRounds,
		GameRepo:      gameRepo,
		PlayerRepo:    playerRepo,
		LedgerRepo:    ledgerRepo,
		ResultRepo:    resultRepo,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating game service: %w", err)
	}
	return svc, nil
}

func openRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}
