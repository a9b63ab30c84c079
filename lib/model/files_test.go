package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fn(name string, cognitive int) *Function {
	f := NewFunction(0, name)
	f.CognitiveComplexity = cognitive
	f.CyclomaticComplexity = cognitive + 1
	return f
}

func TestFilesGetOrCreate(t *testing.T) {
	t.Parallel()

	fs := NewFiles()

	a := fs.GetOrCreate("a.go")
	b := fs.GetOrCreate("b.go")

	assert.Equal(t, a, fs.GetOrCreate("a.go"))
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, b, fs.GetByID(b.ID))
	assert.Nil(t, fs.Get("c.go"))
	assert.Equal(t, []*File{a, b}, fs.List())
}

func TestSetFunctionsComputesMetrics(t *testing.T) {
	t.Parallel()

	fs := NewFiles()
	f := fs.GetOrCreate("a.go")

	fs.SetFunctions(f, []*Function{fn("a", 3), fn("b", 5)})

	assert.Equal(t, &Metrics{
		Functions:               2,
		CognitiveComplexity:     8,
		MaxCognitiveComplexity:  5,
		CyclomaticComplexity:    10,
		MaxCyclomaticComplexity: 6,
	}, f.Metrics)
	assert.Equal(t, f.ID, f.Functions[0].FileID)
}

func TestSetFunctionsKeepsIDs(t *testing.T) {
	t.Parallel()

	fs := NewFiles()
	f := fs.GetOrCreate("a.go")

	fs.SetFunctions(f, []*Function{fn("a", 1), fn("b", 1), fn("b", 2)})
	ids := []ID{f.Functions[0].ID, f.Functions[1].ID, f.Functions[2].ID}

	fs.SetFunctions(f, []*Function{fn("b", 1), fn("c", 1), fn("b", 2)})

	assert.Equal(t, ids[1], f.Functions[0].ID)
	assert.NotContains(t, ids, f.Functions[1].ID)
	assert.Equal(t, ids[2], f.Functions[2].ID)
	assert.Equal(t, 3, f.Metrics.Functions)
}

func TestListFunctionsSkipsDeletedFiles(t *testing.T) {
	t.Parallel()

	fs := NewFiles()
	a := fs.GetOrCreate("a.go")
	b := fs.GetOrCreate("b.go")

	fs.SetFunctions(a, []*Function{fn("a", 1)})
	fs.SetFunctions(b, []*Function{fn("b", 2)})
	b.Exists = false

	assert.Equal(t, []*Function{a.Functions[0]}, fs.ListFunctions())
	assert.Equal(t, 1, fs.Metrics().CognitiveComplexity)
}

func TestAddFromStorageTracksMaxIDs(t *testing.T) {
	t.Parallel()

	fs := NewFiles()

	f := NewFile("a.go", 10)
	f.Functions = []*Function{{ID: 20, FileID: 10, Name: "a"}}
	fs.AddFromStorage(f)

	g := fs.GetOrCreate("b.go")
	fs.SetFunctions(g, []*Function{fn("b", 0)})

	assert.Equal(t, ID(11), g.ID)
	assert.Equal(t, ID(21), g.Functions[0].ID)
}

func TestSizeAdd(t *testing.T) {
	t.Parallel()

	s := NewSize()
	assert.True(t, s.IsEmpty())

	s.Add(&Size{Lines: 10, Code: 5, Comments: 2, Blanks: 3})
	s.Add(&Size{Lines: 1, Code: 1, Comments: -1, Blanks: 0})

	assert.Equal(t, &Size{Lines: 11, Code: 6, Comments: 2, Blanks: 3}, s)
}

func TestConfigInt(t *testing.T) {
	t.Parallel()

	config := map[string]string{
		ConfigThreshold:    "10",
		ConfigMaxFunctions: "many",
	}

	assert.Equal(t, 10, ConfigInt(config, ConfigThreshold, DefaultThreshold))
	assert.Equal(t, DefaultMaxFunctions, ConfigInt(config, ConfigMaxFunctions, DefaultMaxFunctions))
	assert.Equal(t, 7, ConfigInt(config, "other", 7))
	assert.True(t, IsKnownConfig(ConfigThreshold))
	assert.False(t, IsKnownConfig("other"))
}
