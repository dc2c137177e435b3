package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Alarion239/devops-webapp/internal/config"
	"github.com/Alarion239/devops-webapp/internal/healthcheck"
	"github.com/Alarion239/devops-webapp/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.LogError("Invalid configuration", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthcheck.Timeout)
	defer cancel()

	client := &http.Client{Timeout: healthcheck.Timeout}
	if err := healthcheck.Probe(ctx, client, healthcheck.LocalURL(cfg.Port)); err != nil {
		logger.LogError("Health check failed", err, "port", cfg.Port)
		os.Exit(1)
	}
	os.Exit(0)
}
