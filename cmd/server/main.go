package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/weddingweek/internal/config"
	"github.com/JonMunkholm/weddingweek/internal/core"
	"github.com/JonMunkholm/weddingweek/internal/logging"
	"github.com/JonMunkholm/weddingweek/internal/session"
	"github.com/JonMunkholm/weddingweek/internal/source"
	"github.com/JonMunkholm/weddingweek/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	site, err := config.LoadSite(cfg.Site.File)
	if err != nil {
		slog.Error("failed to load site profile", "file", cfg.Site.File, "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"source_dir", cfg.Sources.Dir,
		"source_base_url", cfg.Sources.BaseURL,
		"couple", site.CoupleNames(),
		"timezone", site.Location().String(),
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	slog.Debug("configuration", "detail", cfg.String())

	for _, def := range core.All() {
		slog.Debug("dataset registered", "key", def.Info.Key, "columns", len(def.Info.Columns))
	}

	fetcher := source.NewFetcher(cfg.Sources, cfg.Fetch)
	for _, loc := range []string{cfg.Sources.Itinerary, cfg.Sources.Explore, cfg.Sources.Contacts} {
		target, remote := fetcher.Resolve(loc)
		slog.Info("data source", "location", target, "remote", remote)
	}

	store := session.NewStore(source.NewLoader(fetcher, cfg.Sources), cfg.Session.IdleTimeout)
	server := web.NewServer(cfg, site, store, fetcher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Evict idle sessions until shutdown
	go store.Run(ctx, cfg.Session.SweepInterval)

	go func() {
		<-ctx.Done()
		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped", "sessions", store.Len())
}
