package main

import (
	"time"

	"github.com/pescuma/cogmeter/lib/importers/metrics"
)

type ComputeCmd struct {
	Paths []string `arg:"" help:"Paths to recursively search for source files." type:"existingpath"`

	Include       []string      `short:"i" help:"Only compute files matching these rules, like src/**/*.go or lang:java. Paths are relative to each root."`
	Exclude       []string      `short:"e" help:"Don't compute files matching these rules. This has preference over the included ones."`
	Gitignore     bool          `default:"true" negatable:"" help:"Respect .gitignore file when finding files."`
	Incremental   bool          `default:"true" negatable:"" help:"Don't compute files not changed since the last run."`
	LimitImported int           `help:"Limit the number of computed files. Can be used to incrementally compute data."`
	SaveEvery     time.Duration `default:"10m" help:"Save results while processing to avoid losing work."`
	Routines      int           `help:"Number of files to process in parallel. Default is the number of CPUs."`
}

func (c *ComputeCmd) Run(ctx *context) error {
	ws := ctx.ws

	ws.Console().PushPrefix("compute: ")

	err := ws.Compute(ctx.ctx, c.Paths, &metrics.Options{
		Includes:         c.Include,
		Excludes:         c.Exclude,
		GitIgnore:        c.Gitignore,
		Incremental:      c.Incremental,
		MaxImportedFiles: toOption(c.LimitImported),
		SaveEvery:        toOption(c.SaveEvery),
		Routines:         c.Routines,
	})
	if err != nil {
		return err
	}

	ws.Console().PopPrefix()

	stats, err := ws.Stats(nil)
	if err != nil {
		return err
	}

	printTotals(stats)

	return nil
}

func toOption[T comparable](d T) *T {
	var def T

	if d == def {
		return nil
	} else {
		return &d
	}
}
