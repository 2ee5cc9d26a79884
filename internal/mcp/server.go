package mcp

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mamaar/gocalc/internal/render"
	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/keymap"
)

// Session holds the shared state for the MCP tool handlers: one calculator
// and the recorder it renders into. Tool calls may arrive concurrently, so
// every access goes through mu.
type Session struct {
	mu     sync.Mutex
	calc   *calculator.Calculator
	rec    *render.Recorder
	logger *slog.Logger
}

// NewSession creates a Session around a fresh calculator. Extra options are
// applied after the recorder and logger are wired.
func NewSession(logger *slog.Logger, opts ...calculator.Option) *Session {
	rec := &render.Recorder{}
	base := []calculator.Option{
		calculator.WithDisplay(rec),
		calculator.WithHistory(rec),
		calculator.WithLogger(logger),
	}
	calc := calculator.New(append(base, opts...)...)
	calc.Refresh()
	return &Session{calc: calc, rec: rec, logger: logger}
}

// Do runs fn against the calculator and returns the resulting state.
func (s *Session) Do(fn func(c *calculator.Calculator)) StateOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.calc)
	return s.stateLocked()
}

// Press dispatches a key or control name through the key map.
func (s *Session) Press(key string) (StateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := keymap.Dispatch(s.calc, key); err != nil {
		return StateOutput{}, fmt.Errorf("press %q: %w", key, err)
	}
	s.logger.Debug("key pressed", "key", key)
	return s.stateLocked(), nil
}

// State returns the current state without changing it.
func (s *Session) State() StateOutput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() StateOutput {
	st := s.calc.Snapshot()
	return StateOutput{
		Display:  s.rec.Display(),
		Previous: st.Previous,
		Operator: string(st.Operator),
		Pending:  st.Pending(),
		Stalled:  st.Stalled(),
		History:  s.rec.History(),
	}
}
