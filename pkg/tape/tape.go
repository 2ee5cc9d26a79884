// Package tape reads key scripts ("tapes") and replays them against a
// calculator. A tape is plain text: whitespace-separated keys or control
// names, with '#' starting a comment that runs to the end of the line.
//
//	# 6 + 3 =
//	6 + 3 Enter
//	sqrt
package tape

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/keymap"
	"github.com/mamaar/gocalc/pkg/types"
)

// Event is one key press read from a tape, with its 1-based position.
type Event struct {
	Key    string
	Line   int
	Column int
}

// Tape is a parsed key script.
type Tape struct {
	Name   string
	Events []Event
	sum    uint64
}

// Load reads and parses the tape at path from fs.
func Load(fs afero.Fs, path string) (*Tape, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &types.CalcError{
			Type:    types.FileSystemError,
			Message: fmt.Sprintf("read tape: %v", err),
			Cause:   err,
		}
	}
	return Parse(path, bytes.NewReader(data))
}

// Parse reads a tape from r. name is used in error positions.
func Parse(name string, r io.Reader) (*Tape, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	t := &Tape{Name: name, sum: xxhash.Sum64(src)}
	sc := bufio.NewScanner(bytes.NewReader(src))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, tok := range tokens(text) {
			if _, err := keymap.Lookup(tok.text); err != nil {
				return nil, &types.CalcError{
					Type:    types.ParseError,
					Message: fmt.Sprintf("unknown key %q", tok.text),
					File:    name,
					Line:    line,
					Column:  tok.col,
					Cause:   err,
				}
			}
			t.Events = append(t.Events, Event{Key: tok.text, Line: line, Column: tok.col})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", name, err)
	}
	return t, nil
}

// Sum is the xxHash64 of the tape source.
func (t *Tape) Sum() uint64 {
	return t.sum
}

// Keys returns the keys of the tape in order.
func (t *Tape) Keys() []string {
	keys := make([]string, len(t.Events))
	for i, ev := range t.Events {
		keys[i] = ev.Key
	}
	return keys
}

// Replay presses every key of the tape on c.
func (t *Tape) Replay(c *calculator.Calculator) error {
	for _, ev := range t.Events {
		if err := keymap.Dispatch(c, ev.Key); err != nil {
			return fmt.Errorf("%s:%d:%d: %w", t.Name, ev.Line, ev.Column, err)
		}
	}
	return nil
}

type token struct {
	text string
	col  int
}

func tokens(line string) []token {
	var out []token
	start := -1
	for i, r := range line {
		space := r == ' ' || r == '\t' || r == '\r'
		switch {
		case space && start >= 0:
			out = append(out, token{text: line[start:i], col: start + 1})
			start = -1
		case !space && start < 0:
			start = i
		}
	}
	if start >= 0 {
		out = append(out, token{text: line[start:], col: start + 1})
	}
	return out
}
