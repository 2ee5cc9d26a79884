package watch

import (
	"io"
	"log/slog"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/gocalc/pkg/calculator"
)

func newUpdater(t *testing.T, content string) (*TapeUpdater, afero.Fs, *calculator.Calculator) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/demo.tape", []byte(content), 0644))
	calc := calculator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUpdater(fs, "/demo.tape", calc, logger), fs, calc
}

func TestTapeUpdater_Replay(t *testing.T) {
	u, _, calc := newUpdater(t, "6 + 3 Enter\n")

	replayed, err := u.Replay()
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, "9", calc.Snapshot().Current)
	assert.Equal(t, 1, u.Runs())
}

func TestTapeUpdater_UnchangedContentSkipped(t *testing.T) {
	u, _, calc := newUpdater(t, "6 + 3 Enter\n")

	_, err := u.Replay()
	require.NoError(t, err)

	replayed, err := u.HandleChange(ChangeEvent{Path: "/demo.tape", Op: fsnotify.Write})
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, 1, u.Runs())
	assert.Len(t, calc.Snapshot().History, 1)
}

func TestTapeUpdater_ChangedContentClearsAndReplays(t *testing.T) {
	u, fs, calc := newUpdater(t, "6 + 3 Enter\n")
	_, err := u.Replay()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/demo.tape", []byte("4 +\n"), 0644))
	replayed, err := u.HandleChange(ChangeEvent{Path: "/demo.tape", Op: fsnotify.Write})
	require.NoError(t, err)
	assert.True(t, replayed)

	st := calc.Snapshot()
	assert.Equal(t, "4", st.Previous, "replay starts from a cleared calculator")
	assert.Equal(t, calculator.Add, st.Operator)
	assert.Equal(t, []string{"6 + 3 = 9"}, st.History, "history carries over between replays")
}

func TestTapeUpdater_RemovedFileWaits(t *testing.T) {
	u, fs, _ := newUpdater(t, "1\n")
	require.NoError(t, fs.Remove("/demo.tape"))

	replayed, err := u.HandleChange(ChangeEvent{Path: "/demo.tape", Op: fsnotify.Remove})
	require.NoError(t, err)
	assert.False(t, replayed)
}

func TestTapeUpdater_ParseErrorSurfaces(t *testing.T) {
	u, _, _ := newUpdater(t, "1 + nope\n")

	_, err := u.Replay()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "nope"`)
}
