package model

import (
	"fmt"
	"time"
)

type File struct {
	Path     string
	ID       ID
	Language string

	Exists    bool
	Size      *Size
	Metrics   *Metrics
	Functions []*Function
	Data      map[string]string
	FirstSeen time.Time
	LastSeen  time.Time
}

func NewFile(path string, id ID) *File {
	return &File{
		Path:    path,
		ID:      id,
		Exists:  true,
		Size:    NewSize(),
		Metrics: NewMetrics(),
		Data:    map[string]string{},
	}
}

func (f *File) SeenAt(ts ...time.Time) {
	empty := time.Time{}

	for _, t := range ts {
		t = t.UTC().Round(time.Second)

		if f.FirstSeen == empty || t.Before(f.FirstSeen) {
			f.FirstSeen = t
		}
		if f.LastSeen == empty || t.After(f.LastSeen) {
			f.LastSeen = t
		}
	}
}

// setFunctions replaces the functions of the file and updates its metrics. A
// function keeps the ID of the previous function with the same name, so re-importing
// an unchanged file produces the same rows.
func (f *File) setFunctions(fns []*Function, maxID *ID) {
	previous := map[string]ID{}
	for _, k := range functionKeys(f.Functions) {
		previous[k.key] = k.fn.ID
	}

	f.Metrics.Clear()

	for _, k := range functionKeys(fns) {
		k.fn.FileID = f.ID

		if id, ok := previous[k.key]; ok {
			k.fn.ID = createID(maxID, &id)
		} else {
			k.fn.ID = createID(maxID, nil)
		}

		f.Metrics.AddFunction(k.fn)
	}

	f.Functions = fns
}

type functionKey struct {
	key string
	fn  *Function
}

// functionKeys disambiguates overloads by their order in the file.
func functionKeys(fns []*Function) []functionKey {
	seen := map[string]int{}
	result := make([]functionKey, 0, len(fns))

	for _, fn := range fns {
		i := seen[fn.Name]
		seen[fn.Name] = i + 1

		result = append(result, functionKey{fmt.Sprintf("%v#%v", fn.Name, i), fn})
	}

	return result
}
