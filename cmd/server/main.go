package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/transcript-flow/internal/api"
	"github.com/nguyentantai21042004/transcript-flow/internal/captions"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/deck"
	"github.com/nguyentantai21042004/transcript-flow/internal/generate"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/paginate"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/store"
)

func main() {
	ctx := context.Background()

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Flow")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Records: %s", cfg.Paths.Records)
	log.Info(ctx, "Decks: %s", cfg.Paths.Decks)
	log.Info(ctx, "Max Concurrent Extractions: %d", cfg.Performance.MaxConcurrent)

	st, err := store.New(store.Options{
		Dir:           cfg.Paths.Records,
		TTL:           time.Duration(cfg.Store.TTLHours) * time.Hour,
		SweepInterval: time.Duration(cfg.Store.SweepIntervalMinutes) * time.Minute,
		Watch:         cfg.Store.WatchRecords,
	}, log)
	if err != nil {
		log.Error(ctx, "Failed to open record store: %v", err)
		os.Exit(1)
	}
	defer st.Close()

	provider := captions.New(captions.Options{BaseURL: cfg.Provider.BaseURL}, log)

	pipe := pipeline.New(pipeline.Options{
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		Timeout:       time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
	}, provider, st, log)
	defer pipe.Close()

	gen, err := generate.New(generate.Options{
		APIKeys:   geminiKeys(),
		Model:     cfg.Gemini.Model,
		MaxTokens: cfg.Gemini.MaxTokens,
	}, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize generator: %v", err)
		os.Exit(1)
	}

	decks := deck.New(deck.Options{
		Dir:    cfg.Paths.Decks,
		Limits: paginate.Limits{MaxWords: cfg.Pagination.MaxWords, MaxChars: cfg.Pagination.MaxChars},
		Policy: paginate.PolicyFromString(cfg.Pagination.EmptySection),
	}, gen, nil, log)

	router := api.NewRouter(api.Options{
		Pipeline:  pipe,
		Store:     st,
		Decks:     decks,
		Generator: gen,
		Logger:    log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Listening on %s", addr)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "Transcript Flow stopped")
}

// geminiKeys reads the comma-separated GEMINI_API_KEYS environment variable.
func geminiKeys() []string {
	var keys []string
	for _, key := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
