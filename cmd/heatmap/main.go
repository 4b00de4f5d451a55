package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/temperature-heatmap/internal/adapter/dataset"
	httpadapter "github.com/couchcryptid/temperature-heatmap/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/temperature-heatmap/internal/adapter/kafka"
	"github.com/couchcryptid/temperature-heatmap/internal/app"
	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/heatmap"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := dataset.NewClient(cfg.DatasetURL, cfg.DatasetTimeout, metrics, logger)

	// Cell export is feature-flagged via KAFKA_BROKERS.
	var sink heatmap.CellSink
	var writer *kafkaadapter.Writer
	if cfg.ExportEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sink = writer
		logger.Info("kafka cell export enabled", "topic", cfg.KafkaCellTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka cell export disabled")
	}
	if cfg.LayoutFile != "" {
		logger.Info("layout overrides loaded", "file", cfg.LayoutFile)
	}

	view := heatmap.New(client, sink, cfg.Layout, logger, metrics)
	page := app.NewContainer(render.Title, view)
	srv := httpadapter.NewServer(cfg.HTTPAddr, page, view, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// One fetch and one draw pass; the page is served empty until it lands.
	go view.Mount(ctx)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
