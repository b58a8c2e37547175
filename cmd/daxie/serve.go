package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/govalues/daxie/internal/config"
	"github.com/govalues/daxie/internal/httpapi"
	"github.com/govalues/daxie/internal/httpserver"
	"github.com/govalues/daxie/internal/logger"
	"github.com/govalues/daxie/internal/metrics"
)

// serve runs the HTTP service until SIGINT or SIGTERM.
func serve(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file (defaults when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	handler := httpapi.New(log, m, cfg.Batch)
	router := httpapi.NewRouter(handler, log, m, reg)
	srv := httpserver.New(cfg.Server, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting daxie",
			zap.String("addr", cfg.Server.Addr),
			zap.String("config", *configPath),
			zap.Int("batch_max_items", cfg.Batch.MaxItems),
			zap.Int("batch_concurrency", cfg.Batch.Concurrency),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
