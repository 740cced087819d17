package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	gochart "github.com/VantageDataChat/GoChart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

// treeKind reads a written tree, or "" while it is missing or half written.
func treeKind(path string) gochart.Kind {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var tree gochart.RenderTree
	if json.Unmarshal(data, &tree) != nil {
		return ""
	}
	return tree.Kind
}

func TestWatchSpecRerendersOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger = zap.NewNop()

	dir := t.TempDir()
	path := writeSpec(t, dir, "q1.json", `{"kind":"bar","labels":["a","b"],"series":[{"id":"A","data":[1,2]}]}`)
	dst := filepath.Join(dir, treeName(path))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchSpec(ctx, gochart.New(), path, dst) }()

	require.Eventually(t, func() bool { return treeKind(dst) == gochart.KindBar },
		2*time.Second, 20*time.Millisecond, "first render")

	// Writes to other files in the directory do not re-render.
	writeSpec(t, dir, "other.json", `{"kind":"pie","series":[{"id":"A","data":[1]}]}`)
	time.Sleep(2 * watchDebounce)
	assert.Equal(t, gochart.KindBar, treeKind(dst))

	writeSpec(t, dir, "q1.json", `{"kind":"line","labels":["a","b"],"series":[{"id":"A","data":[2,1]}]}`)
	require.Eventually(t, func() bool { return treeKind(dst) == gochart.KindLine },
		2*time.Second, 20*time.Millisecond, "re-render after write")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchSpec did not return after cancel")
	}
}

func TestWatchSpecMissingDir(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger = zap.NewNop()

	missing := filepath.Join(t.TempDir(), "gone", "q1.json")
	err := watchSpec(context.Background(), gochart.New(), missing, missing+".tree.json")
	assert.ErrorContains(t, err, "failed to watch")
}
