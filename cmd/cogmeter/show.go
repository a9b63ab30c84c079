package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/oleiade/lane/v2"

	"github.com/pescuma/cogmeter/lib/importers/metrics"
	"github.com/pescuma/cogmeter/lib/model"
	"github.com/pescuma/cogmeter/lib/utils"
	"github.com/pescuma/cogmeter/lib/workspace"
)

type ShowCmd struct {
	Filter    []string `short:"f" help:"Only show functions matching all these rules, like **/src/** or cognitive>10."`
	Limit     int      `short:"n" help:"Number of functions to show. Default is the max-functions config."`
	Threshold int      `short:"t" help:"Mark functions above this cognitive complexity. Default is the threshold config."`
	All       bool     `short:"a" help:"Show all matching functions."`
}

func (c *ShowCmd) Run(ctx *context) error {
	ws := ctx.ws

	fns, err := ws.ListFunctions(c.Filter)
	if err != nil {
		return err
	}

	limit := c.Limit
	if limit <= 0 {
		limit, err = ws.GetGlobalConfigInt(model.ConfigMaxFunctions, model.DefaultMaxFunctions)
		if err != nil {
			return err
		}
	}
	if c.All {
		limit = len(fns)
	}

	stats, err := ws.Stats(toOption(c.Threshold))
	if err != nil {
		return err
	}

	top := topFunctions(fns, limit)

	printFunctions(top, stats.Threshold)
	fmt.Println()
	printTotals(stats)

	return nil
}

// topFunctions returns the limit most complex functions, most complex first.
func topFunctions(fns []workspace.FunctionInfo, limit int) []workspace.FunctionInfo {
	if limit <= 0 {
		return nil
	}

	pq := lane.NewMinPriorityQueue[workspace.FunctionInfo, int]()

	for _, fn := range fns {
		pq.Push(fn, fn.Function.CognitiveComplexity)

		if pq.Size() > uint(limit) {
			pq.Pop()
		}
	}

	result := make([]workspace.FunctionInfo, 0, pq.Size())
	for pq.Size() > 0 {
		fn, _, _ := pq.Pop()
		result = append(result, fn)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]

		if a.Function.CognitiveComplexity != b.Function.CognitiveComplexity {
			return a.Function.CognitiveComplexity > b.Function.CognitiveComplexity
		}
		if a.File.Path != b.File.Path {
			return a.File.Path < b.File.Path
		}
		return a.Function.Line < b.Function.Line
	})

	return result
}

func printFunctions(fns []workspace.FunctionInfo, threshold int) {
	if len(fns) == 0 {
		fmt.Println("No functions found")
		return
	}

	cwd, _ := os.Getwd()

	fmt.Printf("  %9v %10v  %-40v %v\n", "Cognitive", "Cyclomatic", "Function", "Location")

	for _, f := range fns {
		fmt.Printf("%v %9v %10v  %-40v %v\n",
			utils.IIf(isAbove(f.Function, threshold), "!", " "),
			f.Function.CognitiveComplexity,
			f.Function.CyclomaticComplexity,
			f.Function.Name,
			location(cwd, f.File, f.Function))
	}
}

func isAbove(fn *model.Function, threshold int) bool {
	return threshold > 0 && fn.CognitiveComplexity > threshold
}

func location(cwd string, file *model.File, fn *model.Function) string {
	path := file.Path
	if cwd != "" {
		if rel, err := filepath.Rel(cwd, path); err == nil && len(rel) < len(path) {
			path = rel
		}
	}

	return fmt.Sprintf("%v:%v", utils.TruncatePath(path, 60), fn.Line)
}

func printTotals(stats *metrics.Stats) {
	for _, line := range totals(stats) {
		fmt.Println(line)
	}
}

func totals(stats *metrics.Stats) []string {
	pc := pluralize.NewClient()

	var result []string

	for _, l := range stats.Languages {
		result = append(result, fmt.Sprintf("%v: %v, %v, %v cognitive complexity (max %v)",
			l.Language,
			count(pc, "file", l.Files),
			count(pc, "function", l.Metrics.Functions),
			humanize.Comma(int64(l.Metrics.CognitiveComplexity)),
			l.Metrics.MaxCognitiveComplexity))
	}

	total := fmt.Sprintf("Total: %v, %v", count(pc, "file", stats.Files), count(pc, "function", stats.Metrics.Functions))
	if stats.Size.Code > 0 {
		total += fmt.Sprintf(", %v of code", count(pc, "line", stats.Size.Code))
	}
	result = append(result, total)

	if stats.Threshold > 0 {
		result = append(result, fmt.Sprintf("%v above cognitive complexity %v",
			count(pc, "function", stats.OverThreshold), stats.Threshold))
	}

	return result
}

func count(pc *pluralize.Client, word string, n int) string {
	return humanize.Comma(int64(n)) + " " + pc.Pluralize(word, n, false)
}
