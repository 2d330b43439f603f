package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"

	"github.com/tripsmith/tripsmith/internal/config"
	"github.com/tripsmith/tripsmith/internal/enrich"
	"github.com/tripsmith/tripsmith/internal/handler"
	"github.com/tripsmith/tripsmith/internal/provider"
	"github.com/tripsmith/tripsmith/internal/service/agent"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env file, continuing with system environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	search := provider.NewDuckDuckGo(cfg.Providers.SearchTimeout)

	var weather provider.WeatherProvider
	if cfg.Providers.WeatherEnabled() {
		weather = provider.NewOpenWeather(cfg.Providers.OpenWeatherKey, cfg.Providers.WeatherTimeout)
		slog.Info("live weather lookups enabled")
	} else {
		slog.Info("OPENWEATHER_API_KEY not set, weather lookups will return advisory text")
	}

	gateway := enrich.New(search, weather, cfg.Cache.TTL)
	agentSvc := agent.NewService(gateway)

	if cfg.Auth.Required() {
		slog.Info("API key check enabled for /api routes")
	} else {
		slog.Warn("API_KEY not set, chat endpoints are open")
	}

	router := handler.NewRouter(cfg, agentSvc, gateway)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("tripsmith backend listening", "addr", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
