// Command georouted loads a .graph file and serves nearest, connectivity,
// routing and distance queries over a JSON API, with a separate monitoring
// listener for health and Prometheus metrics.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/geograph/graphfile"
	"github.com/katalvlaran/geograph/internal/config"
	"github.com/katalvlaran/geograph/internal/metrics"
	"github.com/katalvlaran/geograph/internal/server"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
)

func main() {
	// Cancel on interrupt for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)
	if cfg.Env != envLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Load and build the graph fully before anything can query it; the
	// server only ever reads the published value.
	file, err := graphfile.LoadFile(cfg.GraphPath)
	if err != nil {
		log.Fatalf("Failed to load graph file: %v", err)
	}
	graph, err := file.Graph()
	if err != nil {
		log.Fatalf("Failed to build graph: %v", err)
	}
	appMetrics.GraphVertices.Set(float64(graph.VertexCount()))
	appMetrics.GraphEdges.Set(float64(graph.EdgeCount()))

	logger.InfoContext(ctx, "Graph loaded",
		"path", cfg.GraphPath,
		"vertices", graph.VertexCount(),
		"edges", graph.EdgeCount(),
	)

	srv := server.New(logger, graph, appMetrics)
	api := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.Router(cfg.AllowOrigins),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go startMonitoringServer(ctx, logger, reg, cfg.MonitorPort)

	go func() {
		logger.InfoContext(ctx, "Query API listening", "port", cfg.Port)
		if serveErr := api.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "Query API failed", "error", serveErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = api.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "Query API shutdown failed", "error", err)
	}

	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// startMonitoringServer serves /healthz and /metrics on its own port so
// scraping stays available regardless of query API load.
func startMonitoringServer(ctx context.Context, log *slog.Logger, reg *prometheus.Registry, port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
		if _, err := writer.Write([]byte("OK")); err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.InfoContext(ctx, "Starting monitoring server", "port", port)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Monitoring server failed", "error", err)
	}
}

// setupLogger initializes and returns a logger based on the environment.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return logger
}
