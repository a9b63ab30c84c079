package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("gen/\n"), 0o600))

	filter, err := CreateFileFilter(dir, true,
		func(path string) bool { return strings.HasSuffix(path, ".go") },
		func(path string) bool { return strings.HasSuffix(path, "_test.go") },
	)
	require.Nil(t, err)

	assert.True(t, filter(dir, true))
	assert.True(t, filter(filepath.Join(dir, "src"), true))
	assert.True(t, filter(filepath.Join(dir, "src", "a.go"), false))
	assert.False(t, filter(filepath.Join(dir, "src", "a_test.go"), false))
	assert.False(t, filter(filepath.Join(dir, "src", "a.txt"), false))
	assert.False(t, filter(filepath.Join(dir, ".git"), true))
	assert.False(t, filter(filepath.Join(dir, "gen"), true))
	assert.False(t, filter(filepath.Join(dir, "vendor"), true))
	assert.False(t, filter(filepath.Join(dir, "node_modules", "x", "a.go"), false))
}

func TestCreateFileFilterWithoutGitIgnore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("gen/\n"), 0o600))

	filter, err := CreateFileFilter(dir, false, func(path string) bool { return true }, nil)
	require.Nil(t, err)

	assert.True(t, filter(filepath.Join(dir, "gen"), true))
}
