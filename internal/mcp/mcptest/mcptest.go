// Package mcptest provides test helpers for invoking gocalc MCP tools
// with swappable transports: in-process (fast) or subprocess (full binary).
package mcptest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os/exec"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

// Session wraps an MCP ClientSession with cleanup logic.
type Session struct {
	*mcpsdk.ClientSession
	cancel context.CancelFunc
}

// Close tears down the session.
func (s *Session) Close() {
	_ = s.ClientSession.Close()
	if s.cancel != nil {
		s.cancel()
	}
}

// Transport selects how the MCP server is reached.
type Transport interface {
	connect(ctx context.Context, t testing.TB) (*Session, error)
}

// Dial connects to an MCP server using the given transport.
func Dial(ctx context.Context, t testing.TB, transport Transport) *Session {
	t.Helper()
	sess, err := transport.connect(ctx, t)
	if err != nil {
		t.Fatalf("mcptest.Dial: connect: %v", err)
	}
	return sess
}

// Call invokes a tool and decodes its JSON text content into out.
// It fails the test if the call errors or the tool reports an error.
func Call(ctx context.Context, t testing.TB, sess *Session, name string, args map[string]any, out any) {
	t.Helper()
	result := CallRaw(ctx, t, sess, name, args)
	if result.IsError {
		t.Fatalf("mcptest.Call(%s): tool error: %s", name, Text(result))
	}
	if out == nil {
		return
	}
	if err := json.Unmarshal([]byte(Text(result)), out); err != nil {
		t.Fatalf("mcptest.Call(%s): decode: %v", name, err)
	}
}

// CallRaw invokes a tool and returns the raw result.
func CallRaw(ctx context.Context, t testing.TB, sess *Session, name string, args map[string]any) *mcpsdk.CallToolResult {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	result, err := sess.CallTool(ctx, &mcpsdk.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("mcptest.CallRaw(%s): %v", name, err)
	}
	return result
}

// Text returns the text of the first TextContent block of result.
func Text(result *mcpsdk.CallToolResult) string {
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// inProcess is the in-process transport using NewInMemoryTransports.
type inProcess struct{}

// InProcess returns a transport that runs the MCP server in-process.
func InProcess() Transport { return inProcess{} }

func (inProcess) connect(ctx context.Context, t testing.TB) (*Session, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server, _ := internalmcp.NewServer(logger, "test")

	serverT, clientT := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(ctx)
	go func() { _ = server.Run(ctx, serverT) }()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}

// subprocess is the subprocess transport using CommandTransport.
type subprocess struct {
	binPath string
	args    []string
}

// Subprocess returns a transport that shells out to the given binary,
// e.g. Subprocess("./gocalc", "mcp").
func Subprocess(bin string, args ...string) Transport {
	return subprocess{binPath: bin, args: args}
}

func (sp subprocess) connect(ctx context.Context, t testing.TB) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, sp.binPath, sp.args...)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, &mcpsdk.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}
