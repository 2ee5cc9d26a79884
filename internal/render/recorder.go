package render

import "sync"

// Recorder keeps the last display value and history it was sent, and counts
// notifications. It is safe for concurrent use.
type Recorder struct {
	mu             sync.Mutex
	display        string
	history        []string
	displayUpdates int
	historyUpdates int
}

func (r *Recorder) RenderDisplay(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.display = value
	r.displayUpdates++
}

func (r *Recorder) RenderHistory(entries []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history[:0], entries...)
	r.historyUpdates++
}

// Display returns the last display value.
func (r *Recorder) Display() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.display
}

// History returns a copy of the last history list.
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

// Updates returns how many display and history notifications were received.
func (r *Recorder) Updates() (display, history int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.displayUpdates, r.historyUpdates
}
