// Package calculator implements a string-register calculator: a current
// operand, a pending operator and a previous operand, plus a bounded history
// of completed computations. Every mutation is pushed to a DisplayRenderer,
// every new history entry to a HistoryRenderer.
//
// A Calculator is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
package calculator

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

const (
	// Initial is the display value of a fresh or cleared calculator.
	Initial = "0"
	// ErrorValue is written into the display when a computation has no
	// numeric result.
	ErrorValue = "Error"
)

// Calculator holds the calculator state and its render sinks.
type Calculator struct {
	current  string
	previous string
	operator Operator
	history  []string
	limit    int

	display     DisplayRenderer
	historySink HistoryRenderer
	logger      *slog.Logger
}

// New creates a Calculator showing "0" with an empty history.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		current:     Initial,
		limit:       DefaultHistoryLimit,
		display:     nopRenderer{},
		historySink: nopRenderer{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Calculator) Snapshot() State {
	history := make([]string, len(c.history))
	copy(history, c.history)
	return State{
		Current:  c.current,
		Previous: c.previous,
		Operator: c.operator,
		History:  history,
	}
}

// Refresh pushes the display and the history to both sinks without changing
// any state. Front ends call it once after wiring their renderers.
func (c *Calculator) Refresh() {
	c.updateDisplay()
	c.updateHistory()
}

// AppendDigit appends a digit ("0"-"9") or the decimal point to the current
// operand. A leading "0" is replaced by the first digit, and a second decimal
// point is ignored. Digits typed after ErrorValue are appended to it; only
// Clear leaves the error state.
func (c *Calculator) AppendDigit(d string) {
	if !IsDigit(d) {
		c.logger.Debug("ignoring non-digit input", "input", d)
		return
	}

	switch {
	case c.current == Initial && d != ".":
		c.current = d
	case d == "." && strings.Contains(c.current, "."):
		return
	default:
		c.current += d
	}
	c.updateDisplay()
}

// SetOperator stores op as the pending operator and moves the current operand
// into the previous register. A pending computation is resolved first, which
// is how chained input like "6 + 3 -" behaves. Nothing happens while the
// current operand is empty.
func (c *Calculator) SetOperator(op Operator) {
	if c.current == "" {
		c.logger.Debug("ignoring operator without operand", "operator", op)
		return
	}
	if c.previous != "" {
		c.Evaluate()
	}

	c.operator = op
	c.previous = c.current
	c.current = ""
	c.updateDisplay()
}

// Evaluate applies the pending operator to the previous and current operands.
// Unparseable operands and an empty or unknown operator leave the state
// untouched. Division by zero yields ErrorValue.
func (c *Calculator) Evaluate() {
	prev, okPrev := parseOperand(c.previous)
	cur, okCur := parseOperand(c.current)
	if !okPrev || !okCur {
		c.logger.Debug("ignoring evaluate with unparseable operands",
			"previous", c.previous, "current", c.current)
		return
	}

	var result string
	switch c.operator {
	case Add:
		result = formatNumber(prev + cur)
	case Subtract:
		result = formatNumber(prev - cur)
	case Multiply:
		result = formatNumber(prev * cur)
	case Divide:
		if cur == 0 {
			result = ErrorValue
		} else {
			result = formatNumber(prev / cur)
		}
	case Modulo:
		result = formatNumber(math.Mod(prev, cur))
	case NoOperator:
		return
	default:
		c.logger.Warn("pending operator has no evaluator", "operator", c.operator)
		return
	}

	c.RecordHistory(fmt.Sprintf("%s %s %s = %s", formatNumber(prev), c.operator, formatNumber(cur), result))
	c.current = result
	c.operator = NoOperator
	c.previous = ""
	c.updateDisplay()
}

// SquareRoot replaces the current operand with its square root. Negative
// operands produce ErrorValue.
func (c *Calculator) SquareRoot() {
	num, ok := c.operand("sqrt")
	if !ok {
		return
	}
	if num < 0 {
		c.current = ErrorValue
		c.updateDisplay()
		return
	}

	result := formatNumber(math.Sqrt(num))
	c.RecordHistory(fmt.Sprintf("√%s = %s", formatNumber(num), result))
	c.current = result
	c.updateDisplay()
}

// Square replaces the current operand with its square.
func (c *Calculator) Square() {
	num, ok := c.operand("square")
	if !ok {
		return
	}

	result := formatNumber(num * num)
	c.RecordHistory(fmt.Sprintf("%s² = %s", formatNumber(num), result))
	c.current = result
	c.updateDisplay()
}

// Power arms exponentiation as the pending operator.
func (c *Calculator) Power() {
	c.SetOperator(Power)
}

// Sin replaces the current operand, read in degrees, with its sine.
func (c *Calculator) Sin() { c.trig("sin", math.Sin) }

// Cos replaces the current operand, read in degrees, with its cosine.
func (c *Calculator) Cos() { c.trig("cos", math.Cos) }

// Tan replaces the current operand, read in degrees, with its tangent.
func (c *Calculator) Tan() { c.trig("tan", math.Tan) }

func (c *Calculator) trig(name string, fn func(float64) float64) {
	num, ok := c.operand(name)
	if !ok {
		return
	}

	result := formatFixed(fn(num * math.Pi / 180))
	c.RecordHistory(fmt.Sprintf("%s(%s°) = %s", name, formatNumber(num), result))
	c.current = result
	c.updateDisplay()
}

// Clear resets the operands and the pending operator. History is kept.
func (c *Calculator) Clear() {
	c.current = Initial
	c.previous = ""
	c.operator = NoOperator
	c.updateDisplay()
}

// DeleteLast drops the last character of the current operand, falling back
// to "0" when one character or less is left.
func (c *Calculator) DeleteLast() {
	if len(c.current) > 1 {
		c.current = c.current[:len(c.current)-1]
	} else {
		c.current = Initial
	}
	c.updateDisplay()
}

// RecordHistory prepends entry to the history, drops entries beyond the
// limit, and notifies the history sink.
func (c *Calculator) RecordHistory(entry string) {
	c.history = append([]string{entry}, c.history...)
	if len(c.history) > c.limit {
		c.history = c.history[:c.limit]
	}
	c.updateHistory()
}

// operand parses the current operand for a unary operation.
func (c *Calculator) operand(op string) (float64, bool) {
	num, ok := parseOperand(c.current)
	if !ok {
		c.logger.Debug("ignoring unary operation on unparseable operand", "op", op, "current", c.current)
	}
	return num, ok
}

func (c *Calculator) updateDisplay() {
	c.display.RenderDisplay(c.current)
}

func (c *Calculator) updateHistory() {
	entries := make([]string, len(c.history))
	copy(entries, c.history)
	c.historySink.RenderHistory(entries)
}

// IsDigit reports whether d is accepted by AppendDigit: a single "0"-"9" or ".".
func IsDigit(d string) bool {
	return len(d) == 1 && (d == "." || (d[0] >= '0' && d[0] <= '9'))
}
