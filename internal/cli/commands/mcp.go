package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/internal/cli"
	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

// MCPCommand serves the calculator tools over stdio or streamable HTTP
func MCPCommand(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	addr := fs.String("http", "", "Serve streamable HTTP on this address instead of stdio")
	fs.Usage = printMCPHelp
	_ = fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := cli.NewLogger()
	server, _ := internalmcp.NewServer(logger, cli.Version, cli.CalculatorOptions(logger)...)

	if *addr == "" {
		if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
			fail(err)
		}
		return
	}

	handler := mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server { return server }, nil)
	srv := &http.Server{Addr: *addr, Handler: handler}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	logger.Info("serving MCP over HTTP", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fail(err)
	}
}

func printMCPHelp() {
	fmt.Println(`MCP Command - Serve the calculator as MCP tools

Usage: gocalc [options] mcp [-http <addr>]

All clients share one calculator. Tools: press_key, append_digit,
set_operator, evaluate, clear, delete_last, square_root, square, power,
sin, cos, tan, calculator_state, history.

Flags:
  -http   Listen for streamable HTTP on addr (e.g. :8080) instead of stdio

Examples:
  gocalc mcp
  gocalc --history-limit 50 mcp -http :8080`)
}
