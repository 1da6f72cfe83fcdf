package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"search-orchestrator/internal/adapter/search_http"
	"search-orchestrator/internal/di"
	"search-orchestrator/internal/infra"
	"search-orchestrator/internal/infra/config"
	"search-orchestrator/internal/infra/logger"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New()
	slog.SetDefault(log)

	// 3. Initialize DB
	dbPool, err := infra.NewPostgresDB(context.Background(), cfg.DSN())
	if err != nil {
		log.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Optional Redis for the popular-searches cache
	rdb, err := newOptionalRedis(context.Background(), cfg.RedisURL, log)
	if err != nil {
		log.Warn("redis unavailable, popular searches run uncached", "error", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// 5. Wire Components
	components := di.NewApplicationComponents(cfg, dbPool, rdb, log)

	// 6. Initialize Echo
	e := echo.New()
	e.Use(middleware.Recover())

	// 7. Register Handlers
	handler := search_http.NewHandler(
		components.SearchUsecase,
		components.AutocompleteUsecase,
		components.HistoryUsecase,
		components.SavedSearchUsecase,
		components.PopularUsecase,
	)
	search_http.RegisterRoutes(e, handler, log)

	// 8. Health Checks
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/readyz", func(c echo.Context) error {
		if err := dbPool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "db down", "error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	// 9. Start Server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Info("Starting server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// 10. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

// newOptionalRedis connects when a Redis URL is configured. An empty URL or
// a failed connection leaves the service running without the cache.
func newOptionalRedis(ctx context.Context, redisURL string, log *slog.Logger) (*redis.Client, error) {
	if redisURL == "" {
		log.Info("no redis configured, popular searches run uncached")
		return nil, nil
	}
	return infra.NewRedisClient(ctx, redisURL)
}
