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

	"github.com/katechon/engine/app/api"
	"github.com/katechon/engine/app/cfg"
	"github.com/katechon/engine/app/chat"
	"github.com/katechon/engine/app/database"
	"github.com/katechon/engine/app/event"
	"github.com/katechon/engine/app/feed"
	"github.com/katechon/engine/app/geo"
	"github.com/katechon/engine/app/ollama"
	"github.com/katechon/engine/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("Starting Katechon Engine", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open event archive", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Event archive ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	catalog := feed.NewCatalog(feed.Defaults())
	if appCfg.FeedsFile != "" {
		if err := catalog.LoadFile(appCfg.FeedsFile); err != nil {
			slog.Error("Failed to load feeds file", "path", appCfg.FeedsFile, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Feed catalog loaded", "feeds", catalog.Len(), "enabled", len(catalog.Enabled()))

	store := event.NewStore()
	health := event.NewHealthTracker()
	for _, seed := range event.SeedEvents() {
		store.Insert(seed)
	}
	transcript := chat.NewTranscript()
	registry := chat.NewRegistry()
	eventRepo := database.NewEventRepository(db)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	fetcher := feed.NewFetcher(httpClient, appCfg.UserAgent)
	extractor := feed.NewContentExtractor(httpClient, appCfg.UserAgent)
	resolver := geo.NewKeywordResolver()
	llm := ollama.NewClient(appCfg.OllamaURL, appCfg.OllamaModel)

	orchestrator := chat.NewOrchestrator(llm, registry, transcript, store, health, extractor, eventRepo)

	pollTask := tasks.NewPollFeedsTask(catalog, fetcher, resolver, store, eventRepo)
	scheduler := tasks.NewScheduler(pollTask, time.Duration(appCfg.PollInterval)*time.Second)
	scheduler.Start()
	defer scheduler.Stop()

	handler := api.NewHandler(store, health, catalog, registry, transcript, orchestrator, eventRepo)
	router := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}

	slog.Info("Shutdown complete")
}
