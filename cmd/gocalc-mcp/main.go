package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/gocalc/internal/cli"
	internalmcp "github.com/mamaar/gocalc/internal/mcp"
	"github.com/mamaar/gocalc/pkg/calculator"
)

func main() {
	var (
		portFlag    = flag.Int("port", 0, "TCP port to listen on (0 for stdio)")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		versionFlag = flag.Bool("version", false, "Show version information")
		limitFlag   = flag.Int("history-limit", calculator.DefaultHistoryLimit, "Number of history entries to keep")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gocalc-mcp v%s\n", cli.Version)
		fmt.Println("Model Context Protocol server for the gocalc calculator")
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	session := internalmcp.NewSession(logger, calculator.WithHistoryLimit(*limitFlag))
	mcpServer := newServer(session)

	if *portFlag == 0 {
		// Stdio transport
		if err := server.ServeStdio(mcpServer); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	// HTTP transport
	httpServer := server.NewStreamableHTTPServer(mcpServer)
	logger.Info("starting HTTP server", "port", *portFlag)
	if err := httpServer.Start(fmt.Sprintf(":%d", *portFlag)); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

// newServer builds the mark3labs MCP server around one calculator session.
func newServer(session *internalmcp.Session) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		"gocalc-mcp",
		cli.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	addPressKeyTool(mcpServer, session)
	addControlTools(mcpServer, session)
	addDisplayResource(mcpServer, session)
	addHistoryResource(mcpServer, session)
	return mcpServer
}
