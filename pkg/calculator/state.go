package calculator

// State is a point-in-time copy of the calculator's registers and history.
type State struct {
	Current  string   `json:"current"`
	Previous string   `json:"previous"`
	Operator Operator `json:"operator"`
	History  []string `json:"history"`
}

// Pending reports whether an operator is waiting for its second operand.
func (s State) Pending() bool {
	return s.Operator != NoOperator
}

// Stalled reports whether the pending operator is one Evaluate cannot apply.
// Only Power gets here: once armed it stays pending until Clear or until
// another operator replaces it.
func (s State) Stalled() bool {
	return s.Pending() && !s.Operator.evaluable()
}

// Expression renders the pending part of the computation, e.g. "6 +".
func (s State) Expression() string {
	if !s.Pending() {
		return ""
	}
	return s.Previous + " " + string(s.Operator)
}
