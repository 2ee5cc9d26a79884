// Package keymap binds keyboard keys and on-screen control names to
// calculator operations. Keyboard keys and controls share one table so
// every front end drives the calculator the same way.
package keymap

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/types"
)

// Kind groups bindings for help output.
type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindCommand
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindOperator:
		return "operator"
	case KindCommand:
		return "command"
	default:
		return "function"
	}
}

// Action is one operation reachable from a key or a control.
type Action struct {
	Name        string
	Kind        Kind
	Description string
	apply       func(*calculator.Calculator)
}

// Apply runs the action against c.
func (a Action) Apply(c *calculator.Calculator) {
	a.apply(c)
}

// Label is the title-cased name used on legends and buttons.
func (a Action) Label() string {
	return cases.Title(language.English).String(a.Name)
}

// Binding pairs a key with the action it triggers.
type Binding struct {
	Key    string
	Action Action
}

var (
	bindings = map[string]Action{}
	controls = map[string]Action{}
)

func init() {
	for d := '0'; d <= '9'; d++ {
		bind(digit(string(d)), string(d))
	}
	bind(digit("."), ".")

	for _, op := range []calculator.Operator{calculator.Add, calculator.Subtract, calculator.Multiply, calculator.Divide} {
		bind(operator(op), string(op))
	}

	equals := Action{Name: "equals", Kind: KindCommand, Description: "resolve the pending operation", apply: (*calculator.Calculator).Evaluate}
	clr := Action{Name: "clear", Kind: KindCommand, Description: "reset operands, keep history", apply: (*calculator.Calculator).Clear}
	del := Action{Name: "delete", Kind: KindCommand, Description: "drop the last character", apply: (*calculator.Calculator).DeleteLast}
	bind(equals, "Enter", "=")
	bind(clr, "Escape")
	bind(del, "Backspace")

	mod := operator(calculator.Modulo)
	mod.Name = "mod"
	for _, a := range []Action{
		equals, clr, del, mod,
		{Name: "sqrt", Kind: KindFunction, Description: "square root of the display", apply: (*calculator.Calculator).SquareRoot},
		{Name: "square", Kind: KindFunction, Description: "square of the display", apply: (*calculator.Calculator).Square},
		{Name: "pow", Kind: KindFunction, Description: "arm exponentiation (never resolved by equals)", apply: (*calculator.Calculator).Power},
		{Name: "sin", Kind: KindFunction, Description: "sine of the display in degrees", apply: (*calculator.Calculator).Sin},
		{Name: "cos", Kind: KindFunction, Description: "cosine of the display in degrees", apply: (*calculator.Calculator).Cos},
		{Name: "tan", Kind: KindFunction, Description: "tangent of the display in degrees", apply: (*calculator.Calculator).Tan},
	} {
		controls[a.Name] = a
	}
	controls["%"] = mod
}

func bind(a Action, keys ...string) {
	for _, k := range keys {
		bindings[k] = a
	}
}

func digit(d string) Action {
	return Action{
		Name:        d,
		Kind:        KindDigit,
		Description: "append " + d,
		apply:       func(c *calculator.Calculator) { c.AppendDigit(d) },
	}
}

func operator(op calculator.Operator) Action {
	return Action{
		Name:        string(op),
		Kind:        KindOperator,
		Description: "set operator " + string(op),
		apply:       func(c *calculator.Calculator) { c.SetOperator(op) },
	}
}

// Lookup resolves a keyboard key ("7", "+", "Enter", "Escape", "Backspace")
// or a control name ("sqrt", "sin", "mod", ...) to its action. Control names
// are matched case-insensitively.
func Lookup(key string) (Action, error) {
	if a, ok := bindings[key]; ok {
		return a, nil
	}
	if a, ok := controls[strings.ToLower(key)]; ok {
		return a, nil
	}
	return Action{}, types.NewUnmappedKeyError(key)
}

// Dispatch looks up key and applies its action to c.
func Dispatch(c *calculator.Calculator, key string) error {
	a, err := Lookup(key)
	if err != nil {
		return err
	}
	a.Apply(c)
	return nil
}

// Keys returns the keyboard bindings sorted by kind, then key.
func Keys() []Binding {
	return sorted(bindings)
}

// Controls returns the named controls sorted by kind, then name.
func Controls() []Binding {
	return sorted(controls)
}

func sorted(m map[string]Action) []Binding {
	out := make([]Binding, 0, len(m))
	for k, a := range m {
		out = append(out, Binding{Key: k, Action: a})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action.Kind != out[j].Action.Kind {
			return out[i].Action.Kind < out[j].Action.Kind
		}
		return out[i].Key < out[j].Key
	})
	return out
}
