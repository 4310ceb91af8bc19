package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRequiresPaths(t *testing.T) {
	_, err := New(nil, 0, nil)
	require.Error(t, err)
}

func TestDebouncerCoalesces(t *testing.T) {
	req, trigger, stop := newDebouncer(30 * time.Millisecond)
	defer stop()

	for range 5 {
		trigger()
	}
	select {
	case <-req:
	case <-time.After(time.Second):
		t.Fatal("debounced request not delivered")
	}
	select {
	case <-req:
		t.Fatal("burst produced more than one request")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRunRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "profile.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: A\n"), 0o600))

	w, err := New([]string{target}, 20*time.Millisecond, nil)
	require.NoError(t, err)

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0o600))
	require.NoError(t, os.WriteFile(target, []byte("name: B\n"), 0o600))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
