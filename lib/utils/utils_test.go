package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Min(3, 1, 2))
	assert.Equal(t, 3, Max(3, 1, 2))
	assert.Equal(t, "a", Min("b", "a"))
}

func TestTake(t *testing.T) {
	t.Parallel()

	l := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2}, Take(l, 2))
	assert.Equal(t, []int{1, 2, 3}, Take(l, 10))
	assert.Equal(t, []int{1, 2}, Take(l, -1))
	assert.Equal(t, []int{}, Take(l, -10))
}

func TestLastAndRemoveLast(t *testing.T) {
	t.Parallel()

	l := []string{"a", "b"}

	assert.Equal(t, "b", Last(l))
	assert.Equal(t, []string{"a"}, RemoveLast(l))
}

func TestIsTrue(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTrue("yes"))
	assert.True(t, IsTrue("1"))
	assert.False(t, IsTrue("No"))
	assert.False(t, IsTrue(""))
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.Nil(t, os.WriteFile(file, []byte("a"), 0o600))

	exists, err := FileExists(file)
	assert.Nil(t, err)
	assert.True(t, exists)

	exists, err = FileExists(filepath.Join(dir, "b.txt"))
	assert.Nil(t, err)
	assert.False(t, exists)
}

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a/b.go", TruncatePath("a/b.go", 10))
	assert.Equal(t, "a/b.go", TruncatePath("a/b.go", 0))
	p := TruncatePath("some/long/dir/name/file.go", 12)
	assert.Less(t, len(p), len("some/long/dir/name/file.go"))
	assert.True(t, strings.HasPrefix(p, "..."))
	assert.True(t, strings.HasSuffix(p, "file.go"))
}
