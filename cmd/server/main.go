package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThatOtherAndrew/discord-search-mcp/internal/discord"
	"github.com/ThatOtherAndrew/discord-search-mcp/internal/server"
	"github.com/ThatOtherAndrew/discord-search-mcp/internal/tools"
	"github.com/ThatOtherAndrew/discord-search-mcp/pkg/config"
	"github.com/ThatOtherAndrew/discord-search-mcp/pkg/logger"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	serverName    = "discord-search-mcp"
	serverVersion = "0.1.0"

	shutdownTimeout = 5 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Discord MCP server...")

	// Create Discord client and wait for the gateway to come up
	dc, err := discord.New(cfg.DiscordToken, log)
	if err != nil {
		log.Fatal("Failed to create Discord client", zap.Error(err))
	}

	readyCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.ReadyTimeoutSeconds)*time.Second,
	)
	defer cancel()
	if err := dc.Open(readyCtx); err != nil {
		log.Fatal("Failed to connect to Discord", zap.Error(err))
	}
	defer func() {
		if err := dc.Close(); err != nil {
			log.Warn("Error closing Discord session", zap.Error(err))
		}
	}()

	// Register the tool surface
	mcpServer := mcpserver.NewMCPServer(serverName, serverVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	executor := tools.NewExecutor(dc, log)
	tools.Register(mcpServer, executor)

	srv := server.New(cfg, mcpServer, dc, log)

	// Serve until a signal arrives, then drain
	g, gctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		return srv.Start()
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			log.Info("Shutting down...", zap.String("signal", sig.String()))
		case <-gctx.Done():
			return nil
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
	log.Info("Server exited")
}
