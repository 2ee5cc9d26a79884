package calculator

// DisplayRenderer receives the current display string after every mutation.
type DisplayRenderer interface {
	RenderDisplay(value string)
}

// HistoryRenderer receives the full history, most recent first, whenever an
// entry is recorded.
type HistoryRenderer interface {
	RenderHistory(entries []string)
}

// DisplayFunc adapts a function to DisplayRenderer.
type DisplayFunc func(value string)

func (f DisplayFunc) RenderDisplay(value string) { f(value) }

// HistoryFunc adapts a function to HistoryRenderer.
type HistoryFunc func(entries []string)

func (f HistoryFunc) RenderHistory(entries []string) { f(entries) }

type nopRenderer struct{}

func (nopRenderer) RenderDisplay(string)   {}
func (nopRenderer) RenderHistory([]string) {}
