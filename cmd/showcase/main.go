package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"showcase/internal/config"
	"showcase/internal/desktop"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load(os.Getenv, os.Stderr)
	if err := desktop.RunDesktop(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}
}
