package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	httpadapter "github.com/tianji-app/fortune-api/internal/adapters/http"
	"github.com/tianji-app/fortune-api/internal/adapters/llm"
	"github.com/tianji-app/fortune-api/internal/app/reading"
	"github.com/tianji-app/fortune-api/internal/config"
	"github.com/tianji-app/fortune-api/internal/domain"
	"github.com/tianji-app/fortune-api/internal/i18n"
	"github.com/tianji-app/fortune-api/internal/observability"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	observability.Init(cfg.LogLevel)
	logger := observability.Logger()

	var oracle domain.Oracle
	if cfg.UseMockOracle {
		logger.Info("using mock oracle")
		oracle = llm.NewMockOracle()
	} else {
		logger.Info("using gemini oracle", "model", cfg.ModelName)
		oracle, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			logger.Error("failed to initialize gemini client", "error", err)
			os.Exit(1)
		}
	}

	svc := reading.NewService(oracle, cfg.ThinkingBudget)

	translator, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		logger.Error("failed to load locales", "error", err)
		os.Exit(1)
	}

	handler := httpadapter.NewServer(svc, translator, cfg.DefaultLanguage)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		// Oracle-backed endpoints wait on the upstream model.
		WriteTimeout: cfg.OracleTimeout + 10*time.Second,
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
