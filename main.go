package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alarion239/devops-webapp/internal/config"
	"github.com/Alarion239/devops-webapp/internal/logger"
	"github.com/Alarion239/devops-webapp/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.LogError("Invalid configuration", err)
		os.Exit(1)
	}

	if err := server.New(cfg).Run(ctx); err != nil {
		logger.LogError("Failed to start server", err, "port", cfg.Port)
		os.Exit(1)
	}
}
