// Package main starts the browser-facing web service.
//
// This process serves the marketing pages and the account management
// frontend, translating account service responses for browsers.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	webcmd "github.com/meganhq/megan-web/internal/cmd/web"
	"github.com/meganhq/megan-web/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger := log.New(os.Stderr, "[WEB] ", log.LstdFlags)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg, logger); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
