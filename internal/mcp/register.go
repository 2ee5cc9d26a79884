package mcp

import (
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calculator"
)

// NewServer creates an MCP server with every calculator tool registered
// against a fresh Session.
func NewServer(logger *slog.Logger, version string, opts ...calculator.Option) (*mcpsdk.Server, *Session) {
	state := NewSession(logger, opts...)
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "gocalc", Version: version}, nil)
	RegisterAllTools(server, state)
	return server, state
}

// RegisterAllTools wires every calculator tool into the MCP server.
func RegisterAllTools(s *mcpsdk.Server, state *Session) {
	registerInputTools(s, state)
	registerFunctionTools(s, state)
	registerStateTools(s, state)
}
