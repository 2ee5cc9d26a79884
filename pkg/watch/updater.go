package watch

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/tape"
)

// TapeUpdater replays a tape onto a calculator whenever its content changes.
// The calculator is cleared before each replay; its history carries over.
type TapeUpdater struct {
	fs      afero.Fs
	path    string
	calc    *calculator.Calculator
	logger  *slog.Logger
	lastSum uint64
	runs    int
}

// NewUpdater creates a TapeUpdater for the tape at path.
func NewUpdater(fs afero.Fs, path string, calc *calculator.Calculator, logger *slog.Logger) *TapeUpdater {
	return &TapeUpdater{
		fs:     fs,
		path:   path,
		calc:   calc,
		logger: logger,
	}
}

// Runs returns how many times the tape has been replayed.
func (u *TapeUpdater) Runs() int {
	return u.runs
}

// Replay loads the tape and replays it unless its content is unchanged since
// the last replay. It reports whether a replay happened.
func (u *TapeUpdater) Replay() (bool, error) {
	t, err := tape.Load(u.fs, u.path)
	if err != nil {
		return false, err
	}
	if u.runs > 0 && t.Sum() == u.lastSum {
		u.logger.Debug("tape unchanged, skipping replay", "path", u.path)
		return false, nil
	}

	u.calc.Clear()
	if err := t.Replay(u.calc); err != nil {
		return false, fmt.Errorf("replay %s: %w", u.path, err)
	}
	u.lastSum = t.Sum()
	u.runs++
	u.logger.Info("tape replayed", "path", u.path, "keys", len(t.Events), "run", u.runs)
	return true, nil
}

// HandleChange reacts to a watcher event. Removals and renames are logged
// and skipped; the next create or write triggers a replay.
func (u *TapeUpdater) HandleChange(ev ChangeEvent) (bool, error) {
	if !u.exists() {
		u.logger.Warn("tape disappeared, waiting for it to come back", "path", ev.Path, "op", ev.Op.String())
		return false, nil
	}
	return u.Replay()
}

func (u *TapeUpdater) exists() bool {
	ok, err := afero.Exists(u.fs, u.path)
	return err == nil && ok
}
