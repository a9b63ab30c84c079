package model

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

type Files struct {
	mutex         sync.RWMutex
	maxID         ID
	maxFunctionID ID

	filesByPath map[string]*File
	filesByID   map[ID]*File
}

func NewFiles() *Files {
	return &Files{
		filesByPath: map[string]*File{},
		filesByID:   map[ID]*File{},
	}
}

func (fs *Files) AddFromStorage(file *File) *File {
	if file.ID > fs.maxID {
		fs.maxID = file.ID
	}

	for _, fn := range file.Functions {
		if fn.ID > fs.maxFunctionID {
			fs.maxFunctionID = fn.ID
		}
	}

	fs.filesByPath[file.Path] = file
	fs.filesByID[file.ID] = file

	return file
}

func (fs *Files) GetOrCreate(path string) *File {
	if len(path) == 0 {
		panic("empty path not supported")
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	result, ok := fs.filesByPath[path]

	if !ok {
		fs.maxID++
		result = NewFile(path, fs.maxID)
		fs.filesByPath[path] = result
		fs.filesByID[result.ID] = result
	}

	return result
}

func (fs *Files) Get(path string) *File {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return fs.filesByPath[path]
}

func (fs *Files) GetByID(id ID) *File {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return fs.filesByID[id]
}

// SetFunctions replaces the functions of a file, assigning ids to new ones.
func (fs *Files) SetFunctions(file *File, fns []*Function) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	file.setFunctions(fns, &fs.maxFunctionID)
}

func (fs *Files) List() []*File {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	result := lo.Values(fs.filesByPath)

	sortFiles(result)

	return result
}

// ListExisting ignores files that were deleted since they were imported.
func (fs *Files) ListExisting() []*File {
	return lo.Filter(fs.List(), func(f *File, _ int) bool {
		return f.Exists
	})
}

// ListFunctions returns the functions of existing files, sorted by file and line.
func (fs *Files) ListFunctions() []*Function {
	return lo.FlatMap(fs.ListExisting(), func(f *File, _ int) []*Function {
		return f.Functions
	})
}

func (fs *Files) Metrics() *Metrics {
	result := NewMetrics()
	for _, f := range fs.ListExisting() {
		result.Add(f.Metrics)
	}
	return result
}

func (fs *Files) GroupByLanguage() map[string][]*File {
	return lo.GroupBy(fs.ListExisting(), func(f *File) string { return f.Language })
}

func sortFiles(result []*File) {
	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})
}
