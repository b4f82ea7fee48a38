package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gcp-tts-cli/internal/config"
	"gcp-tts-cli/internal/logging"
)

var version = "dev"

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.GetLogLevel(), cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	a := newApp(cfg, logger, os.Stdout, os.Stderr)
	code := a.execute(ctx, os.Args[1:])

	stop()
	_ = logger.Sync()
	os.Exit(code)
}
