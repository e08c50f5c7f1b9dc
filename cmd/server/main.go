package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pragma/auth-service/internal/app"
	"github.com/pragma/auth-service/internal/infrastructure/config"
	"github.com/pragma/auth-service/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: cfg.Tracing.ServiceName,
		Caller:  cfg.IsDevelopment(),
	})

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
