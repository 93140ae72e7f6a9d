package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pressgraph-hq/pressgraph-mcp/internal/config"
	"github.com/pressgraph-hq/pressgraph-mcp/internal/logger"
	"github.com/pressgraph-hq/pressgraph-mcp/internal/mcpserver"
	"github.com/pressgraph-hq/pressgraph-mcp/pkg/apiclient"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pressgraph-mcp start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	log.Infow("pressgraph-mcp starting", "version", version, "base_url", cfg.APIBaseURL)

	client, err := apiclient.New(cfg.APIBaseURL, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("build api client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := mcpserver.NewServer(client, logger.NewToolLogger(log), version)
	if err != nil {
		return fmt.Errorf("build mcp server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}
