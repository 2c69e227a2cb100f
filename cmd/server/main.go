package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abhilekh0724/hoops-stats-service/internal/config"
	"github.com/Abhilekh0724/hoops-stats-service/internal/logging"
	"github.com/Abhilekh0724/hoops-stats-service/internal/server"
)

const serviceName = "hoops-stats-service"

// appVersion is stamped at build time with -ldflags.
var appVersion = "dev"

func main() {
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})

	// Lets tests exercise main without binding ports.
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		logging.Info(logger, "skipping server run")
		return
	}

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger).Run(ctx, stop); err != nil {
		logging.Error(logger, "server exited", err)
		os.Exit(1)
	}
}
