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

	"github.com/go-playground/validator/v10"

	"github.com/edukit/coursed/internal/catalog"
	"github.com/edukit/coursed/internal/platform/cache"
	"github.com/edukit/coursed/internal/platform/config"
	"github.com/edukit/coursed/internal/quiz"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	ctx := context.Background()

	loader := catalog.NewLoader(cfg.Content.Source)
	if err := loader.Load(ctx); err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	app := &app{
		loader:        loader,
		store:         quiz.NewMemoryStore(),
		validate:      validator.New(),
		submitEnabled: cfg.Quiz.SubmitEnabled,
	}
	if cfg.Quiz.SubmitEnabled {
		app.sink = quiz.NewFormsSink(cfg.Quiz.FormsBaseURL)
	}
	if cfg.Cache.URL != "" {
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			slog.Error("failed to connect cache", "error", err)
			os.Exit(1)
		}
		defer c.Close()
		app.cache = c
		app.store = quiz.NewRedisStore(c, time.Duration(cfg.Quiz.InstanceTTL)*time.Minute)
	}

	mux := newMux(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGTERM/SIGINT.
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-runCtx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// newMux creates the HTTP router.
func newMux(a *app) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.HandleFunc("GET /api/sections", a.handleSections)
	mux.HandleFunc("GET /api/lesson", a.handleLesson)
	mux.HandleFunc("POST /api/quiz/{id}/answers", a.handleAnswer)
	mux.HandleFunc("POST /api/quiz/{id}/evaluate", a.handleEvaluate)
	mux.HandleFunc("POST /api/quiz/{id}/reset", a.handleReset)
	mux.HandleFunc("GET /ws/search", a.handleSearchWS)
	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (a *app) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.loader.Catalog(); !ok {
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
		return
	}
	if a.cache != nil {
		if err := a.cache.HealthCheck(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
