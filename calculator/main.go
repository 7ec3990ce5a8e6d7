package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-finance-calculator/config"
	"go-finance-calculator/console"
	"go-finance-calculator/finance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.NewLogfmtLogger(os.Stderr).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := cfg.Logger(os.Stderr)

	financeService := finance.NewService(finance.NewEngine())
	financeService = finance.NewLoggingService(level.Debug(log.With(logger, "component", "finance")), financeService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(financeService, os.Stdin, os.Stdout,
		console.WithLogger(log.With(logger, "component", "console")),
		console.WithClearScreen(cfg.ClearScreen),
	)
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		level.Error(logger).Log("msg", "console failed", "err", err)
		os.Exit(1)
	}
}
