package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/easydtmf/easydtmf/internal/config"
	"github.com/easydtmf/easydtmf/internal/history"
	"github.com/easydtmf/easydtmf/internal/server"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()
	logger.Info("dtmfd starting",
		zap.String("listen", cfg.ListenAddr),
		zap.String("outputDir", cfg.OutputDir),
		zap.Int("maxRequestDigits", cfg.MaxRequestDigits),
	)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Fatal("create output dir failed", zap.Error(err))
	}

	hist, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		logger.Fatal("open history db failed", zap.Error(err))
	}
	defer hist.Close()

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      server.New(cfg, logger, hist).Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}
