package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_journal/internal/app/di"
	"stock_journal/internal/app/router"
	"stock_journal/internal/config"
	authadapters "stock_journal/internal/feature/auth/adapters"
	authhandler "stock_journal/internal/feature/auth/transport/handler"
	authusecase "stock_journal/internal/feature/auth/usecase"
	journalhandler "stock_journal/internal/feature/journal/transport/handler"
	journalusecase "stock_journal/internal/feature/journal/usecase"
	watchlisthandler "stock_journal/internal/feature/watchlist/transport/handler"
	watchlistusecase "stock_journal/internal/feature/watchlist/usecase"
	infradb "stock_journal/internal/platform/db"
	jwtmw "stock_journal/internal/platform/jwt"
	infraredis "stock_journal/internal/platform/redis"
	"stock_journal/internal/shared/ratelimiter"
)

func main() {
	// Config. A load failure is captured as data and served as a
	// diagnostic in place of the application, never swallowed.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("initialization failed", "error", err)
		if runErr := router.NewInitError(err).Run(":8080"); runErr != nil {
			slog.Error("diagnostic server failed", "error", runErr)
			os.Exit(1)
		}
		return
	}

	setupLogger(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// Store
	db, err := infradb.Open(cfg.Postgres, cfg.RunMigrations)
	if err != nil {
		slog.Error("store unavailable", "error", err)
		os.Exit(1)
	}

	// Redis (optional)
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
			slog.Warn("Redis unavailable, running without sessions cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	entryRepo := di.NewEntryRepository(db, rdb, cfg.Cache.EntriesTTL)

	// JWT
	jwtGen := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	journals := journalusecase.NewManager(entryRepo)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(entryRepo)

	// Handlers
	loginLimiter := ratelimiter.NewLimiter(10, time.Minute)
	authH := authhandler.NewAuthHandler(authUC, loginLimiter)
	entriesH := journalhandler.NewEntryHandler(journals)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	r := router.New(cfg.JWT.Secret, authH, entriesH, watchlistH)

	slog.Info("starting server", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs a JSON slog handler at the configured level.
func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}
