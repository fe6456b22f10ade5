package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"taskedge/internal/config"
	"taskedge/internal/server"
	"taskedge/internal/storage"
	"taskedge/internal/storage/postgres"
	"taskedge/internal/storage/sqlite"
	"taskedge/internal/summary"
)

func main() {
	// .env is optional; exported variables win either way.
	_ = godotenv.Load()
	cfg := config.Load()

	addrFlag := flag.String("addr", cfg.Addr, "HTTP listen address")
	dbFlag := flag.String("db", cfg.DBPath, "Path to sqlite database file (ignored when DATABASE_URL is set)")
	staticFlag := flag.String("static", cfg.StaticDir, "Directory with the web client")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var (
		store storage.Store
		err   error
	)
	if cfg.DatabaseURL != "" {
		store, err = postgres.Open(cfg.DatabaseURL, logger)
	} else {
		store, err = sqlite.Open(*dbFlag, logger)
	}
	if err != nil {
		logger.Error("unable to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	if cfg.AIBaseURL == "" {
		logger.Warn("AI_API_URL not set; tasks will be created without summaries")
	}
	summarizer := summary.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, logger)

	srv := server.New(store, store, summarizer, logger, *staticFlag)

	corsHandler := gorillahandlers.CORS(
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedOrigins(cfg.CORSOrigins),
	)(srv.Engine())

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: corsHandler,
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
