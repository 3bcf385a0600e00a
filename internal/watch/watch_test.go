package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFile_DebouncesWritesAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets: []\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, 100*time.Millisecond, zaptest.NewLogger(t), func() error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("targets: []\n# edit\n"), 0o644))
	}
	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 20*time.Millisecond)

	// No further calls without further writes.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestFile_CallbackErrorKeepsWatching(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bindings.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go func() {
		_ = File(ctx, path, 20*time.Millisecond, nil, func() error {
			calls.Add(1)
			return errors.New("broken description")
		})
	}()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`{"targets":[]}`), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	before := calls.Load()
	require.NoError(t, os.WriteFile(path, []byte(`{"targets":[ ]}`), 0o644))
	require.Eventually(t, func() bool { return calls.Load() > before }, 3*time.Second, 10*time.Millisecond)
}

func TestFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := File(context.Background(), filepath.Join(t.TempDir(), "nope", "b.yaml"), time.Millisecond, nil, func() error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch ")
}
