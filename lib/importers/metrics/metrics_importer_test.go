package metrics

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
	"github.com/pescuma/cogmeter/lib/languages"
	"github.com/pescuma/cogmeter/lib/model"
	"github.com/pescuma/cogmeter/lib/storages"
	"github.com/pescuma/cogmeter/lib/storages/orm"
)

const chain = `package p

func chain(x, y, z bool) {
	if x {
	} else if y {
	} else if z {
	} else {
	}
}

func simple() {
}
`

func newImporter(t *testing.T) (*Importer, storages.Storage) {
	console := consoles.NewConsole(io.Discard)

	storage, err := orm.NewGormStorage(orm.WithSqliteInMemory(), console)
	require.Nil(t, err)

	t.Cleanup(func() {
		_ = storage.Close()
	})

	return NewImporter(console, storage), storage
}

func write(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.Nil(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.Nil(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func existing(t *testing.T, storage storages.Storage) map[string]*model.File {
	files, err := storage.LoadFiles()
	require.Nil(t, err)

	return lo.Associate(files.ListExisting(), func(f *model.File) (string, *model.File) {
		return filepath.Base(f.Path), f
	})
}

func TestImportComputesFunctions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.go", chain)
	write(t, dir, "a_test.go", chain)
	write(t, dir, "vendor/v.go", chain)
	write(t, dir, ".hidden/h.go", chain)
	write(t, dir, "gen/g.go", chain)
	write(t, dir, ".gitignore", "gen/\n")
	write(t, dir, "README.md", "# readme\n")

	importer, storage := newImporter(t)

	err := importer.Import(context.Background(), []string{dir}, &Options{
		Excludes:  []string{"**/*_test.go"},
		GitIgnore: true,
		Routines:  2,
	})
	require.Nil(t, err)

	files := existing(t, storage)
	require.Len(t, files, 1)

	a := files["a.go"]
	require.NotNil(t, a)
	assert.Equal(t, languages.Go, a.Language)
	assert.Greater(t, a.Size.Code, 0)
	require.Len(t, a.Functions, 2)
	assert.Equal(t, "chain", a.Functions[0].Name)
	assert.Equal(t, 4, a.Functions[0].CognitiveComplexity)
	assert.Equal(t, 3, a.Functions[0].Line)
	assert.Equal(t, "simple", a.Functions[1].Name)
	assert.Equal(t, 0, a.Functions[1].CognitiveComplexity)
	assert.Equal(t, 4, a.Metrics.MaxCognitiveComplexity)

	config, err := storage.LoadConfig()
	require.Nil(t, err)
	assert.NotEmpty(t, (*config)[ConfigLastRun])
}

func TestImportIncludes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "src/a.go", chain)
	write(t, dir, "other/b.go", chain)
	write(t, dir, "src/c.js", "function f(a, b) { if (a && b) {} }\n")

	importer, storage := newImporter(t)

	err := importer.Import(context.Background(), []string{dir}, &Options{
		Includes: []string{"src/** & lang:go"},
	})
	require.Nil(t, err)

	files := existing(t, storage)
	assert.Equal(t, []string{"a.go"}, lo.Keys(files))
}

func TestImportSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := write(t, dir, "a.go", chain)
	write(t, dir, "b.go", chain)

	importer, storage := newImporter(t)

	err := importer.Import(context.Background(), []string{path}, &Options{})
	require.Nil(t, err)

	files := existing(t, storage)
	assert.Equal(t, []string{"a.go"}, lo.Keys(files))

	a := files["a.go"]
	assert.Equal(t, languages.Go, a.Language)
	require.Len(t, a.Functions, 2)
	assert.Equal(t, 4, a.Functions[0].CognitiveComplexity)
}

func TestImportSingleFileIsFiltered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	test := write(t, dir, "a_test.go", chain)
	readme := write(t, dir, "README.md", "# readme\n")

	importer, storage := newImporter(t)

	err := importer.Import(context.Background(), []string{test, readme}, &Options{
		Excludes: []string{"**/*_test.go"},
	})
	require.Nil(t, err)

	assert.Empty(t, existing(t, storage))
}

func TestImportIncrementalAndDeletes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := write(t, dir, "a.go", chain)
	write(t, dir, "b.go", "package p\n\nfunc b() {\n\tfor {\n\t}\n}\n")

	importer, storage := newImporter(t)
	opts := &Options{Incremental: true}

	require.Nil(t, importer.Import(context.Background(), []string{dir}, opts))
	assert.Len(t, existing(t, storage), 2)
	assert.Equal(t, 1, existing(t, storage)["b.go"].Functions[0].CognitiveComplexity)

	require.Nil(t, os.Remove(a))
	write(t, dir, "b.go", "package p\n\nfunc b() {\n\tfor {\n\t\tfor {\n\t\t}\n\t}\n}\n")
	// Make sure the modification time changes even on coarse file systems
	later := lo.Must(os.Stat(filepath.Join(dir, "b.go"))).ModTime().Add(2e9)
	require.Nil(t, os.Chtimes(filepath.Join(dir, "b.go"), later, later))

	require.Nil(t, importer.Import(context.Background(), []string{dir}, opts))

	files := existing(t, storage)
	require.Len(t, files, 1)
	assert.Equal(t, 3, files["b.go"].Functions[0].CognitiveComplexity)
}

func TestImportMaxFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.go", chain)
	write(t, dir, "b.go", chain)
	write(t, dir, "c.go", chain)

	importer, storage := newImporter(t)

	maxFiles := 2
	require.Nil(t, importer.Import(context.Background(), []string{dir}, &Options{MaxImportedFiles: &maxFiles}))

	files, err := storage.LoadFiles()
	require.Nil(t, err)

	computed := lo.Filter(files.List(), func(f *model.File, _ int) bool { return len(f.Functions) > 0 })
	assert.Len(t, computed, 2)
}

func TestImportCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.go", chain)

	importer, _ := newImporter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := importer.Import(ctx, []string{dir}, &Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeStats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.go", chain)
	write(t, dir, "b.js", "function f(a, b) {\n  if (a && b) {\n  }\n}\n")

	importer, storage := newImporter(t)
	require.Nil(t, importer.Import(context.Background(), []string{dir}, &Options{}))

	stats, err := NewComputer(consoles.NewConsole(io.Discard), storage).Compute(3)
	require.Nil(t, err)

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 3, stats.Metrics.Functions)
	assert.Equal(t, 6, stats.Metrics.CognitiveComplexity)
	assert.Equal(t, 1, stats.OverThreshold)
	require.Len(t, stats.Languages, 2)
	assert.Equal(t, languages.Go, stats.Languages[0].Language)
	assert.Equal(t, languages.JavaScript, stats.Languages[1].Language)
	assert.Equal(t, 2, stats.Languages[1].Metrics.CognitiveComplexity)
}
