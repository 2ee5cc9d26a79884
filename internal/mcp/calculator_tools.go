package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/types"
)

// --- press_key ---

type PressKeyInput struct {
	Key string `json:"key" jsonschema:"keyboard key (0-9 . + - * / Enter = Escape Backspace) or control name (sqrt square pow sin cos tan mod clear delete equals)"`
}

// --- append_digit ---

type AppendDigitInput struct {
	Digit string `json:"digit" jsonschema:"a single digit 0-9 or the decimal point"`
}

// --- set_operator ---

type SetOperatorInput struct {
	Operator string `json:"operator" jsonschema:"one of + - * / % **"`
}

// NoInput is the input of tools that take no arguments.
type NoInput struct{}

func registerInputTools(s *mcpsdk.Server, state *Session) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "press_key",
		Description: "Press a keyboard key or an on-screen control and return the calculator state.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in PressKeyInput) (*mcpsdk.CallToolResult, any, error) {
		out, err := state.Press(in.Key)
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(out), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "append_digit",
		Description: "Append a digit or the decimal point to the current operand. A leading 0 is replaced; a second decimal point is ignored.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in AppendDigitInput) (*mcpsdk.CallToolResult, any, error) {
		if !calculator.IsDigit(in.Digit) {
			return errResult(&types.CalcError{
				Type:    types.InvalidOperand,
				Message: fmt.Sprintf("digit must be 0-9 or \".\", got %q", in.Digit),
			}), nil, nil
		}
		out := state.Do(func(c *calculator.Calculator) { c.AppendDigit(in.Digit) })
		return textResult(out), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name: "set_operator",
		Description: `Store a pending operator and move the current operand aside. A pending operation is resolved first.
Note: "**" is accepted but evaluate never resolves it; the state reports stalled=true until clear or another operator.`,
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in SetOperatorInput) (*mcpsdk.CallToolResult, any, error) {
		op, err := calculator.ParseOperator(in.Operator)
		if err != nil {
			return errResult(err), nil, nil
		}
		out := state.Do(func(c *calculator.Calculator) { c.SetOperator(op) })
		return textResult(out), nil, nil
	})

	addStep(s, state, "evaluate", "Apply the pending operator. Division by zero shows Error; unparseable operands leave the state unchanged.", (*calculator.Calculator).Evaluate)
	addStep(s, state, "clear", "Reset operands and the pending operator. History is kept.", (*calculator.Calculator).Clear)
	addStep(s, state, "delete_last", "Drop the last character of the current operand (falls back to 0).", (*calculator.Calculator).DeleteLast)
}

func registerFunctionTools(s *mcpsdk.Server, state *Session) {
	addStep(s, state, "square_root", "Replace the display with its square root. Negative values show Error.", (*calculator.Calculator).SquareRoot)
	addStep(s, state, "square", "Replace the display with its square.", (*calculator.Calculator).Square)
	addStep(s, state, "power", "Arm ** as the pending operator. Evaluate never resolves it.", (*calculator.Calculator).Power)
	addStep(s, state, "sin", "Replace the display, read in degrees, with its sine (6 decimals).", (*calculator.Calculator).Sin)
	addStep(s, state, "cos", "Replace the display, read in degrees, with its cosine (6 decimals).", (*calculator.Calculator).Cos)
	addStep(s, state, "tan", "Replace the display, read in degrees, with its tangent (6 decimals).", (*calculator.Calculator).Tan)
}

func registerStateTools(s *mcpsdk.Server, state *Session) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "calculator_state",
		Description: "Return the display, pending operation, and history without changing anything.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in NoInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.State()), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "history",
		Description: "Return the history of completed computations, most recent first.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in NoInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.State().History), nil, nil
	})
}

// addStep registers a tool that runs one argument-less calculator operation.
func addStep(s *mcpsdk.Server, state *Session, name, desc string, op func(*calculator.Calculator)) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        name,
		Description: desc,
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in NoInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.Do(op)), nil, nil
	})
}
