// Package main initializes and starts the passforge API server, setting up
// configuration, logging, the preset store, the remote-service clients, the
// rate limiter, and the HTTP routes.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/mkarlsson/passforge/internal/breach"
	"github.com/mkarlsson/passforge/internal/config"
	"github.com/mkarlsson/passforge/internal/logger"
	"github.com/mkarlsson/passforge/internal/preset"
	"github.com/mkarlsson/passforge/internal/probe"
	"github.com/mkarlsson/passforge/internal/ratelimit"
	"github.com/mkarlsson/passforge/internal/server/handler/http"
	"github.com/mkarlsson/passforge/internal/service"
	"github.com/mkarlsson/passforge/internal/share"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Load the preset collection; a missing or corrupt file falls back to
	// the built-in presets in memory.
	store := preset.NewStore(options.PresetFile, zapLogger)
	if err := store.Load(); err != nil {
		zapLogger.Fatal("cannot load presets", zap.Error(err))
	}

	requestTimeout := time.Duration(options.RequestTimeoutSeconds) * time.Second
	probeTimeout := time.Duration(options.ProbeTimeoutSeconds) * time.Second

	// Availability probe shared by both remote clients.
	prober := probe.New(probeTimeout, zapLogger)

	// Remote-service clients.
	checker := breach.NewChecker(options.BreachBaseURL, requestTimeout, prober, zapLogger)
	history := share.NewHistory()
	shareClient := share.NewClient(options.ShareBaseURL, options.CurlBinary,
		requestTimeout, prober, history, zapLogger)

	// Rate limiter with its one-second tick loop.
	limiter := ratelimit.New(options.CooldownSeconds)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go limiter.Run(ctx)

	// The application facade owning session state.
	svc := service.New(checker, shareClient, history, store, limiter, zapLogger)

	// Build the router with middleware and routes.
	router := http.NewRouter(
		&http.PasswordHandler{Service: svc},
		&http.BreachHandler{Service: svc},
		&http.ShareHandler{Service: svc},
		&http.PresetHandler{Store: store},
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
