package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/idnakit/internal/api"
	"github.com/jroosing/idnakit/internal/config"
	"github.com/jroosing/idnakit/internal/database"
	"github.com/jroosing/idnakit/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON configuration file (or set IDNAKIT_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		preset     = flag.String("preset", "", "Override conversion preset (default, strict, lax)")
		noHistory  = flag.Bool("no-history", false, "Disable the conversion history store")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *preset != "" {
		cfg.IDNA.Preset = *preset
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "invalid preset: %v\n", err)
			os.Exit(1)
		}
	}
	if *noHistory {
		cfg.History.Enabled = false
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})

	var db *database.DB
	if cfg.History.Enabled {
		db, err = database.Open(cfg.History.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open history store: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	srv := api.New(cfg, db, logger)
	logger.Info("idnakit starting",
		"addr", srv.Addr(),
		"preset", cfg.IDNA.Preset,
		"history", cfg.History.Enabled,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
