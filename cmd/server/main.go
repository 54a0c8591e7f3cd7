package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workmatch/internal/app"
	"workmatch/internal/config"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.LUTC)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	application, cleanup, err := app.Bootstrap(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Printf("cleanup error: %v", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()
	logger.Printf("listening | app=%s env=%s addr=%s", cfg.App.AppName, cfg.App.Environment, addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatalf("server error: %v", err)
		}
	case sig := <-sigCh:
		logger.Printf("shutting down | signal=%s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}
}
