package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shareit/config"
	_ "shareit/docs" // Swagger docs
	"shareit/internal/gateway"
	"shareit/pkg/log"
	"shareit/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ShareIt gateway...")
	logger.Infof(ctx, "Forwarding to %s", cfg.Gateway.ServerURL)

	gw, err := gateway.New(gateway.Config{
		Logger:          logger,
		Port:            cfg.Gateway.Port,
		Mode:            cfg.HTTPServer.Mode,
		ServerURL:       cfg.Gateway.ServerURL,
		Timeout:         cfg.Gateway.Timeout,
		Header:          cfg.Identity.Header,
		RateLimitPerMin: cfg.Gateway.RateLimitPerMin,
		Metrics:         metrics.New("shareit_gateway"),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize gateway: ", err)
		return
	}

	if err := gw.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run gateway: ", err)
		return
	}

	logger.Info(ctx, "Gateway stopped gracefully")
}
