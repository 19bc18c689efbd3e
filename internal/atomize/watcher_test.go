package atomize

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitignore"), "vendor/\n*.generated.css\n")

	w, err := NewWatcher(dir, WatchOptions{}, func(string) {}, nil)
	require.NoError(t, err)
	t.Cleanup(w.close)

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(dir, "card.css"), true},
		{filepath.Join(dir, "nested", "button.jsonc"), true},
		{filepath.Join(dir, "notes.md"), false},
		{filepath.Join(dir, "theme.generated.css"), false},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			require.Equal(t, tt.want, w.Matches(tt.path))
		})
	}
}

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.css")
	writeFile(t, path, "display: flex;")

	var (
		mu    sync.Mutex
		calls []string
	)
	onChange := func(p string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, p)
	}

	w, err := NewWatcher(dir, WatchOptions{Debounce: 100 * time.Millisecond}, onChange, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for range 3 {
		require.NoError(t, os.WriteFile(path, []byte("display: block;"), 0o600))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{path}, calls)
}
