package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/winforge/autoit-mcp/internal/cmd/autoitmcp"
)

// main starts the automation MCP server on stdio or websocket.
func main() {
	cfg, err := autoitmcp.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[autoit-mcp] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := autoitmcp.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
