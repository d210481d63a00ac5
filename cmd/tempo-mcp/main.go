package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "tempo/internal/adapters/mcp"
	"tempo/internal/adapters/sqlite"
	"tempo/internal/application"
	"tempo/internal/config"
)

func main() {
	dbFlag := flag.String("db", config.DatabasePath(), "path to the goal database")
	flag.Parse()

	store := sqlite.NewStore()
	if err := store.Open(*dbFlag); err != nil {
		log.Fatalf("tempo-mcp: %v", err)
	}
	defer store.Close()

	// Agents tend to fire tool calls in bursts; debounce the sweep.
	rec := application.NewReconciler(store,
		application.WithSweepCooldown(5*time.Second),
	)

	mcpServer := server.NewMCPServer(
		"tempo-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, rec)
	mcpadapter.RegisterWriteTools(mcpServer, rec)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tempo-mcp: %v", err)
	}
}
