package workspace

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/cogmeter/lib/consoles"
	"github.com/pescuma/cogmeter/lib/importers/metrics"
	"github.com/pescuma/cogmeter/lib/model"
)

const source = `package p

func loops(items []int) {
	for _, i := range items {
		if i > 0 && i < 10 {
			continue
		}
	}
}

func flat() {
}
`

func newWorkspace(t *testing.T, file string) *Workspace {
	w, err := NewWorkspaceWithConsole(file, consoles.NewConsole(io.Discard))
	require.Nil(t, err)

	t.Cleanup(func() {
		_ = w.Close()
	})

	return w
}

func TestUnknownStorage(t *testing.T) {
	t.Parallel()

	_, err := NewWorkspaceWithConsole("a.json", consoles.NewConsole(io.Discard))

	assert.NotNil(t, err)
}

func TestInvalidMySqlWorkspace(t *testing.T) {
	t.Parallel()

	_, err := NewWorkspaceWithConsole("mysql:user@tcp(localhost)", consoles.NewConsole(io.Discard))

	assert.NotNil(t, err)
}

func TestCreatesWorkspaceDir(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "ws", "cogmeter.sqlite")

	newWorkspace(t, file)

	_, err := os.Stat(filepath.Dir(file))
	assert.Nil(t, err)
}

func TestSetGlobalConfig(t *testing.T) {
	t.Parallel()

	w := newWorkspace(t, ":memory:")

	changed, err := w.SetGlobalConfig(model.ConfigThreshold, "10")
	require.Nil(t, err)
	assert.True(t, changed)

	changed, err = w.SetGlobalConfig(model.ConfigThreshold, "10")
	require.Nil(t, err)
	assert.False(t, changed)

	v, err := w.GetGlobalConfigInt(model.ConfigThreshold, model.DefaultThreshold)
	require.Nil(t, err)
	assert.Equal(t, 10, v)

	_, err = w.SetGlobalConfig("other", "1")
	assert.NotNil(t, err)

	_, err = w.SetGlobalConfig(model.ConfigMaxFunctions, "x")
	assert.NotNil(t, err)
}

func TestComputeAndList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte(source), 0o600))

	w := newWorkspace(t, ":memory:")

	err := w.Compute(context.Background(), []string{dir}, &metrics.Options{})
	require.Nil(t, err)

	fns, err := w.ListFunctions(nil)
	require.Nil(t, err)

	scores := lo.Associate(fns, func(f FunctionInfo) (string, int) {
		return f.Function.Name, f.Function.CognitiveComplexity
	})
	// for 1, if 2, && 1, continue 1
	assert.Equal(t, map[string]int{"loops": 5, "flat": 0}, scores)

	fns, err = w.ListFunctions([]string{"cognitive>0", "name:l*"})
	require.Nil(t, err)
	assert.Len(t, fns, 1)

	_, err = w.ListFunctions([]string{"re:("})
	assert.NotNil(t, err)

	stats, err := w.Stats(nil)
	require.Nil(t, err)
	assert.Equal(t, model.DefaultThreshold, stats.Threshold)
	assert.Equal(t, 0, stats.OverThreshold)

	stats, err = w.Stats(lo.ToPtr(4))
	require.Nil(t, err)
	assert.Equal(t, 1, stats.OverThreshold)
}
