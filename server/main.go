package main

import (
	"context"
	"errors"
	nhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-finance-calculator/config"
	"go-finance-calculator/finance"
	"go-finance-calculator/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.NewLogfmtLogger(os.Stderr).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := cfg.Logger(os.Stderr)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	financeService := finance.NewService(finance.NewEngine())
	financeService = finance.NewLoggingService(log.With(logger, "component", "finance"), financeService)
	financeService = finance.NewInstrumentingService(reg, financeService)

	handler := http.NewServer(financeService, log.With(logger, "component", "http"),
		http.WithAllowedOrigins(cfg.CORSOrigins),
		http.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)

	server := &nhttp.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		level.Error(logger).Log("msg", "server failed", "err", err)
		os.Exit(1)
	case sig := <-quit:
		level.Info(logger).Log("msg", "shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		level.Error(logger).Log("msg", "shutdown failed", "err", err)
	}
}
