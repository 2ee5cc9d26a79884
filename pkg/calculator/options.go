package calculator

import "log/slog"

// DefaultHistoryLimit is the number of history entries kept when no
// WithHistoryLimit option is given.
const DefaultHistoryLimit = 10

// Option configures a Calculator.
type Option func(*Calculator)

// WithDisplay sets the sink notified with the display string.
func WithDisplay(r DisplayRenderer) Option {
	return func(c *Calculator) {
		if r != nil {
			c.display = r
		}
	}
}

// WithHistory sets the sink notified with the history list.
func WithHistory(r HistoryRenderer) Option {
	return func(c *Calculator) {
		if r != nil {
			c.historySink = r
		}
	}
}

// WithLogger sets the logger used to report ignored operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHistoryLimit caps the history at n entries. Values below 1 are ignored.
func WithHistoryLimit(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.limit = n
		}
	}
}
