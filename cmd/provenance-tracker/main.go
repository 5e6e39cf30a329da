// Package main boots the supply provenance tracker HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartsupply/provenance-tracker/internal/config"
	"github.com/smartsupply/provenance-tracker/internal/httpapi"
	"github.com/smartsupply/provenance-tracker/internal/obs"
	"github.com/smartsupply/provenance-tracker/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		obs.InitLogger("info", "json")
		obs.Logger.Error().Err(err).Msg("config_load_error")
		os.Exit(1)
	}
	obs.InitLogger(cfg.LogLevel, cfg.LogFormat)
	obs.Logger.Info().Msg("service_starting")

	trk := tracker.New()
	if cfg.SeedSampleData {
		if err := trk.SeedSampleData(); err != nil {
			obs.Logger.Error().Err(err).Msg("seed_error")
			os.Exit(1)
		}
		products, entries := trk.Counts()
		obs.Logger.Info().Int("products", products).Int("ledger_entries", entries).Msg("sample_data_seeded")
	}

	app := httpapi.NewApp(cfg, trk)
	handler := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info().Str("addr", cfg.HTTPAddr).Msg("http_listen")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error().Err(err).Msg("http_server_error")
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info().Str("signal", s.String()).Msg("shutdown_signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error().Err(err).Msg("http_shutdown_error")
	}
	obs.Logger.Info().Msg("service_stopped")
}
