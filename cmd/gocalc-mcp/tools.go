package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	internalmcp "github.com/mamaar/gocalc/internal/mcp"
	"github.com/mamaar/gocalc/pkg/keymap"
)

const (
	displayURI = "calculator://display"
	historyURI = "calculator://history"
)

// addPressKeyTool adds the press_key tool to the MCP server
func addPressKeyTool(s *server.MCPServer, session *internalmcp.Session) {
	tool := mcp.NewTool("press_key",
		mcp.WithDescription("Press a keyboard key (0-9 . + - * / Enter = Escape Backspace) or a control name"),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Key or control name, e.g. '7', '+', 'Enter', 'sqrt'"),
		),
	)

	s.AddTool(tool, pressKeyHandler(session))
}

func pressKeyHandler(session *internalmcp.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		key, ok := args["key"].(string)
		if !ok {
			return mcp.NewToolResultError("key is required"), nil
		}

		out, err := session.Press(key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return stateResult(out)
	}
}

// addControlTools adds one argument-less tool per on-screen control
func addControlTools(s *server.MCPServer, session *internalmcp.Session) {
	for _, tool := range controlTools() {
		s.AddTool(tool, controlHandler(session, tool.Name))
	}
}

// controlTools describes the control tools. Aliases such as "%" share the
// tool of the control they point to.
func controlTools() []mcp.Tool {
	var tools []mcp.Tool
	for _, b := range keymap.Controls() {
		if b.Key != b.Action.Name {
			continue
		}
		tools = append(tools, mcp.NewTool(b.Key,
			mcp.WithDescription(fmt.Sprintf("%s: %s", b.Action.Label(), b.Action.Description)),
		))
	}
	return tools
}

func controlHandler(session *internalmcp.Session, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := session.Press(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return stateResult(out)
	}
}

// addDisplayResource exposes the display sink as a resource
func addDisplayResource(s *server.MCPServer, session *internalmcp.Session) {
	res := mcp.NewResource(displayURI,
		"Display",
		mcp.WithResourceDescription("The value currently shown on the calculator display"),
		mcp.WithMIMEType("text/plain"),
	)

	s.AddResource(res, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      displayURI,
				MIMEType: "text/plain",
				Text:     session.State().Display,
			},
		}, nil
	})
}

// addHistoryResource exposes the history sink as a resource
func addHistoryResource(s *server.MCPServer, session *internalmcp.Session) {
	res := mcp.NewResource(historyURI,
		"History",
		mcp.WithResourceDescription("Completed computations, most recent first"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(res, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.MarshalIndent(session.State().History, "", "  ")
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      historyURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func stateResult(out internalmcp.StateOutput) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
