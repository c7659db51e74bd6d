package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/linkedin-mcp/internal/config"
	"github.com/honeycarbs/linkedin-mcp/internal/mcp"
	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
	"github.com/honeycarbs/linkedin-mcp/pkg/shutdown"
)

func main() {
	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.BuildResources(cfg, logger)
	if err != nil {
		logger.Error("failed to build upstream clients", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go shutdown.Graceful(
		ctx,
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting", "transport", "stdio")

	if err := srv.Run(ctx); err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
