package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamaar/gocalc/pkg/calculator"
)

func TestTerminal_Plain(t *testing.T) {
	var buf bytes.Buffer
	term := NewPlainTerminal(&buf)
	c := calculator.New(calculator.WithDisplay(term), calculator.WithHistory(term))

	c.AppendDigit("9")
	c.SquareRoot()

	assert.Equal(t, "display: 9\nhistory: √9 = 3\ndisplay: 3\n", buf.String())
}

func TestTerminal_Styled(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.RenderDisplay("42")
	term.RenderHistory([]string{"6 + 3 = 9", "√9 = 3"})

	out := buf.String()
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "History")
	assert.True(t, strings.Index(out, "6 + 3 = 9") < strings.Index(out, "√9 = 3"))
}

func TestHistory_Empty(t *testing.T) {
	assert.Contains(t, History(nil), "(empty)")
}

func TestDisplay_EmptyValueKeepsBox(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(Display("")))
	assert.Contains(t, Display("Error"), "Error")
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	c := calculator.New(calculator.WithDisplay(rec), calculator.WithHistory(rec))

	c.AppendDigit("6")
	c.SetOperator(calculator.Add)
	c.AppendDigit("3")
	c.Evaluate()

	assert.Equal(t, "9", rec.Display())
	assert.Equal(t, []string{"6 + 3 = 9"}, rec.History())

	displays, histories := rec.Updates()
	assert.Equal(t, 4, displays)
	assert.Equal(t, 1, histories)

	got := rec.History()
	got[0] = "changed"
	assert.Equal(t, []string{"6 + 3 = 9"}, rec.History())
}
