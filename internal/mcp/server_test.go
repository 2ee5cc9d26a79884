package mcp_test

import (
	"context"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/gocalc/internal/mcp"
	"github.com/mamaar/gocalc/internal/mcp/mcptest"
)

var transportFlag = flag.String("transport", "inprocess", "MCP transport: inprocess or process")
var binFlag = flag.String("bin", "./gocalc", "path to the gocalc binary (used with -transport=process)")

func mcpTransport() mcptest.Transport {
	switch *transportFlag {
	case "process":
		return mcptest.Subprocess(*binFlag, "mcp")
	default:
		return mcptest.InProcess()
	}
}

func dial(t *testing.T) (context.Context, *mcptest.Session) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	sess := mcptest.Dial(ctx, t, mcpTransport())
	t.Cleanup(sess.Close)
	return ctx, sess
}

func TestTools_PressKeySequence(t *testing.T) {
	ctx, sess := dial(t)

	var out mcp.StateOutput
	for _, key := range []string{"6", "+", "3", "Enter"} {
		mcptest.Call(ctx, t, sess, "press_key", map[string]any{"key": key}, &out)
	}

	assert.Equal(t, "9", out.Display)
	assert.False(t, out.Pending)
	assert.Equal(t, []string{"6 + 3 = 9"}, out.History)
}

func TestTools_TypedOperations(t *testing.T) {
	ctx, sess := dial(t)

	var out mcp.StateOutput
	mcptest.Call(ctx, t, sess, "append_digit", map[string]any{"digit": "5"}, &out)
	mcptest.Call(ctx, t, sess, "set_operator", map[string]any{"operator": "/"}, &out)
	assert.True(t, out.Pending)
	assert.Equal(t, "5", out.Previous)
	assert.Equal(t, "/", out.Operator)

	mcptest.Call(ctx, t, sess, "append_digit", map[string]any{"digit": "0"}, &out)
	mcptest.Call(ctx, t, sess, "evaluate", nil, &out)

	assert.Equal(t, "Error", out.Display)
	assert.Equal(t, []string{"5 / 0 = Error"}, out.History)
}

func TestTools_Functions(t *testing.T) {
	testCases := []struct {
		digits   []string
		tool     string
		expected string
	}{
		{[]string{"9"}, "square_root", "3"},
		{[]string{"1", "2"}, "square", "144"},
		{[]string{"9", "0"}, "sin", "1.000000"},
		{[]string{"6", "0"}, "cos", "0.500000"},
		{[]string{"4", "5"}, "tan", "1.000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.tool, func(t *testing.T) {
			ctx, sess := dial(t)
			for _, d := range tc.digits {
				mcptest.Call(ctx, t, sess, "append_digit", map[string]any{"digit": d}, nil)
			}
			var out mcp.StateOutput
			mcptest.Call(ctx, t, sess, tc.tool, nil, &out)
			assert.Equal(t, tc.expected, out.Display)
			assert.Len(t, out.History, 1)
		})
	}
}

func TestTools_PowerReportsStalled(t *testing.T) {
	ctx, sess := dial(t)

	var out mcp.StateOutput
	mcptest.Call(ctx, t, sess, "append_digit", map[string]any{"digit": "2"}, nil)
	mcptest.Call(ctx, t, sess, "power", nil, nil)
	mcptest.Call(ctx, t, sess, "append_digit", map[string]any{"digit": "3"}, nil)
	mcptest.Call(ctx, t, sess, "evaluate", nil, &out)

	assert.True(t, out.Stalled)
	assert.Equal(t, "**", out.Operator)
	assert.Equal(t, "3", out.Display)
}

func TestTools_ClearAndDeleteLast(t *testing.T) {
	ctx, sess := dial(t)

	var out mcp.StateOutput
	for _, d := range []string{"1", "2", "3"} {
		mcptest.Call(ctx, t, sess, "append_digit", map[string]any{"digit": d}, nil)
	}
	mcptest.Call(ctx, t, sess, "delete_last", nil, &out)
	assert.Equal(t, "12", out.Display)

	mcptest.Call(ctx, t, sess, "clear", nil, &out)
	assert.Equal(t, "0", out.Display)
}

func TestTools_StateAndHistory(t *testing.T) {
	ctx, sess := dial(t)

	var st mcp.StateOutput
	mcptest.Call(ctx, t, sess, "calculator_state", nil, &st)
	assert.Equal(t, "0", st.Display)
	assert.Empty(t, st.History)

	mcptest.Call(ctx, t, sess, "press_key", map[string]any{"key": "4"}, nil)
	mcptest.Call(ctx, t, sess, "press_key", map[string]any{"key": "square"}, nil)

	var history []string
	mcptest.Call(ctx, t, sess, "history", nil, &history)
	assert.Equal(t, []string{"4² = 16"}, history)
}

func TestTools_InvalidArguments(t *testing.T) {
	ctx, sess := dial(t)

	testCases := []struct {
		tool    string
		args    map[string]any
		message string
	}{
		{"press_key", map[string]any{"key": "F1"}, "no action bound"},
		{"append_digit", map[string]any{"digit": "12"}, "digit must be"},
		{"set_operator", map[string]any{"operator": "^"}, "not supported"},
	}

	for _, tc := range testCases {
		t.Run(tc.tool, func(t *testing.T) {
			result := mcptest.CallRaw(ctx, t, sess, tc.tool, tc.args)
			require.True(t, result.IsError)
			assert.Contains(t, mcptest.Text(result), tc.message)
		})
	}
}
