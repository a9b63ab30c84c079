package metrics

import (
	"sort"

	"github.com/pescuma/cogmeter/lib/consoles"
	"github.com/pescuma/cogmeter/lib/model"
	"github.com/pescuma/cogmeter/lib/storages"
)

type Computer struct {
	console consoles.Console
	storage storages.Storage
}

func NewComputer(console consoles.Console, storage storages.Storage) *Computer {
	return &Computer{
		console: console,
		storage: storage,
	}
}

type Stats struct {
	Files     int
	Size      *model.Size
	Metrics   *model.Metrics
	Languages []*LanguageStats

	// Functions with cognitive complexity above the threshold
	Threshold     int
	OverThreshold int
}

type LanguageStats struct {
	Language string
	Files    int
	Size     *model.Size
	Metrics  *model.Metrics
}

// Compute aggregates the metrics of all existing files. A threshold <= 0 disables
// the count of complex functions.
func (c *Computer) Compute(threshold int) (*Stats, error) {
	filesDB, err := c.storage.LoadFiles()
	if err != nil {
		return nil, err
	}

	result := &Stats{
		Size:      model.NewSize(),
		Metrics:   model.NewMetrics(),
		Threshold: threshold,
	}

	for lang, files := range filesDB.GroupByLanguage() {
		ls := &LanguageStats{
			Language: lang,
			Size:     model.NewSize(),
			Metrics:  model.NewMetrics(),
		}

		for _, file := range files {
			ls.Files++
			ls.Size.Add(file.Size)
			ls.Metrics.Add(file.Metrics)

			if threshold > 0 {
				for _, fn := range file.Functions {
					if fn.CognitiveComplexity > threshold {
						result.OverThreshold++
					}
				}
			}
		}

		result.Files += ls.Files
		result.Size.Add(ls.Size)
		result.Metrics.Add(ls.Metrics)
		result.Languages = append(result.Languages, ls)
	}

	sort.Slice(result.Languages, func(i, j int) bool {
		return result.Languages[i].Language < result.Languages[j].Language
	})

	return result, nil
}
