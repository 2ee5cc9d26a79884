package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/watch"
)

// ReplayCommand replays a tape file, optionally again on every change
func ReplayCommand(args []string) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	follow := fs.Bool("watch", false, "Replay again whenever the tape changes")
	debounce := fs.Duration("debounce", 200*time.Millisecond, "Quiet period before a change triggers a replay")
	fs.Usage = printReplayHelp
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		printReplayHelp()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := replayOptions{path: fs.Arg(0), watch: *follow, debounce: *debounce}
	if err := runReplay(ctx, afero.NewOsFs(), os.Stdout, opts); err != nil {
		fail(err)
	}
}

type replayOptions struct {
	path     string
	watch    bool
	debounce time.Duration
}

func runReplay(ctx context.Context, fs afero.Fs, w io.Writer, opts replayOptions) error {
	logger := cli.NewLogger()
	calc := newCalculator(w, logger)
	updater := watch.NewUpdater(fs, opts.path, calc, logger)

	if _, err := updater.Replay(); err != nil {
		return err
	}
	if err := reportState(w, calc.Snapshot()); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	watcher, err := watch.NewWatcher(opts.path, opts.debounce, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	events := make(chan watch.ChangeEvent)
	errc := make(chan error, 1)
	go func() { errc <- watcher.Run(ctx, events) }()

	logger.Info("watching tape", "path", watcher.Path())
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case ev := <-events:
			replayed, err := updater.HandleChange(ev)
			if err != nil {
				// A half-written tape is common while editing; keep watching.
				logger.Error("replay failed", "path", opts.path, "err", err)
				continue
			}
			if !replayed {
				continue
			}
			fmt.Fprintf(w, "\n--- run %d ---\n", updater.Runs())
			if err := reportState(w, calc.Snapshot()); err != nil {
				return err
			}
		}
	}
}

func printReplayHelp() {
	fmt.Println(`Replay Command - Replay a tape of key presses

Usage: gocalc [options] replay [-watch] [-debounce 200ms] <tape>

Arguments:
  tape   A text file of keys separated by whitespace. Everything after '#'
         on a line is a comment.

Flags:
  -watch      Keep running and replay the tape whenever it changes. The
              calculator is cleared before each replay; history carries over.
  -debounce   Quiet period after the last change before replaying.

Examples:
  gocalc replay session.tape
  gocalc --verbose replay -watch session.tape`)
}
