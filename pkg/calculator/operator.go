package calculator

import (
	"fmt"

	"github.com/mamaar/gocalc/pkg/types"
)

// Operator is a binary operator waiting for its right-hand operand.
type Operator string

const (
	NoOperator Operator = ""
	Add        Operator = "+"
	Subtract   Operator = "-"
	Multiply   Operator = "*"
	Divide     Operator = "/"
	Modulo     Operator = "%"
	// Power is armed by Calculator.Power. Evaluate has no case for it, so a
	// pending Power is never resolved; see State.Stalled.
	Power Operator = "**"
)

// Operators lists every operator SetOperator accepts, in display order.
var Operators = []Operator{Add, Subtract, Multiply, Divide, Modulo, Power}

// ParseOperator converts a symbol such as "+" or "**" into an Operator.
func ParseOperator(symbol string) (Operator, error) {
	for _, op := range Operators {
		if string(op) == symbol {
			return op, nil
		}
	}
	return NoOperator, &types.CalcError{
		Type:    types.InvalidOperator,
		Message: fmt.Sprintf("operator %q is not supported", symbol),
	}
}

// evaluable reports whether Evaluate knows how to apply op.
func (op Operator) evaluable() bool {
	switch op {
	case Add, Subtract, Multiply, Divide, Modulo:
		return true
	}
	return false
}
