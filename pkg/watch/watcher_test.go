package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWatcher_ModifyFileTriggersEvent(t *testing.T) {
	dir := t.TempDir()
	path := writeTape(t, dir, "demo.tape", "1 + 1 Enter\n")

	w, err := NewWatcher(path, 50*time.Millisecond, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	out := make(chan ChangeEvent, 10)
	go func() { _ = w.Run(ctx, out) }()

	writeTape(t, dir, "demo.tape", "2 + 2 Enter\n")

	ev := waitForEvent(t, out, 2*time.Second)
	if ev.Path != w.Path() {
		t.Fatalf("expected event for %s, got %s", w.Path(), ev.Path)
	}
}

func TestWatcher_CreateFileTriggersEvent(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(filepath.Join(dir, "later.tape"), 50*time.Millisecond, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	out := make(chan ChangeEvent, 10)
	go func() { _ = w.Run(ctx, out) }()

	writeTape(t, dir, "later.tape", "9 sqrt\n")

	ev := waitForEvent(t, out, 2*time.Second)
	if filepath.Base(ev.Path) != "later.tape" {
		t.Fatalf("expected event for later.tape, got %s", ev.Path)
	}
}

func TestWatcher_OtherFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeTape(t, dir, "demo.tape", "1\n")

	w, err := NewWatcher(path, 50*time.Millisecond, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	out := make(chan ChangeEvent, 10)
	go func() { _ = w.Run(ctx, out) }()

	writeTape(t, dir, "other.tape", "2\n")

	select {
	case ev := <-out:
		t.Fatalf("expected no events for other.tape, got %+v", ev)
	case <-ctx.Done():
		// Good: no events received
	}
}

func TestWatcher_DebounceCoalescesEvents(t *testing.T) {
	dir := t.TempDir()
	path := writeTape(t, dir, "rapid.tape", "0\n")

	w, err := NewWatcher(path, 200*time.Millisecond, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	out := make(chan ChangeEvent, 10)
	go func() { _ = w.Run(ctx, out) }()

	for i := 0; i < 5; i++ {
		writeTape(t, dir, "rapid.tape", string(rune('0'+i))+"\n")
		time.Sleep(20 * time.Millisecond)
	}

	waitForEvent(t, out, 2*time.Second)

	select {
	case ev := <-out:
		t.Fatalf("expected rapid writes to coalesce, got a second event %+v", ev)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_ContextCancellationStops(t *testing.T) {
	dir := t.TempDir()
	path := writeTape(t, dir, "demo.tape", "1\n")

	w, err := NewWatcher(path, 50*time.Millisecond, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan ChangeEvent, 10)

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, out)
	}()

	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "demo.tape"), 50*time.Millisecond, testLogger())
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

// --- helpers ---

func writeTape(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func waitForEvent(t *testing.T, ch <-chan ChangeEvent, timeout time.Duration) ChangeEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
		return ChangeEvent{}
	}
}
