package metrics

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/hhatto/gocloc"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cogmeter/lib/consoles"
	"github.com/pescuma/cogmeter/lib/filters"
	"github.com/pescuma/cogmeter/lib/importers/common"
	"github.com/pescuma/cogmeter/lib/languages"
	"github.com/pescuma/cogmeter/lib/languages/treesitter"
	"github.com/pescuma/cogmeter/lib/metrics/complexity"
	"github.com/pescuma/cogmeter/lib/model"
	"github.com/pescuma/cogmeter/lib/storages"
	"github.com/pescuma/cogmeter/lib/utils"
)

const (
	dataLastModified = "metrics:last_modified"
	dataGitHead      = "git:head"
	dataGitBranch    = "git:branch"

	ConfigLastRun  = "import:last-run"
	ConfigLastTime = "import:last-time"
)

type Importer struct {
	console consoles.Console
	storage storages.Storage
}

type Options struct {
	// Rules over paths relative to the root dir, like src/**/*.go or lang:go
	Includes []string
	Excludes []string

	GitIgnore        bool
	Incremental      bool
	MaxImportedFiles *int
	SaveEvery        *time.Duration
	Routines         int
}

func NewImporter(console consoles.Console, storage storages.Storage) *Importer {
	return &Importer{
		console: console,
		storage: storage,
	}
}

type work struct {
	file     *model.File
	language string
	modTime  string

	functions []*model.Function
	err       error
}

func (i *Importer) Import(ctx context.Context, dirs []string, opts *Options) error {
	filesDB, err := i.storage.LoadFiles()
	if err != nil {
		return err
	}

	pathFilter, err := filters.ParseIncludeExclude(opts.Includes, opts.Excludes)
	if err != nil {
		return err
	}

	config, err := i.storage.LoadConfig()
	if err != nil {
		return err
	}

	run := model.NewUUID("r")
	(*config)[ConfigLastRun] = string(run)
	(*config)[ConfigLastTime] = time.Now().Format(time.RFC3339)

	var ws []*work
	for _, dir := range dirs {
		dir, err = utils.PathAbs(dir)
		if err != nil {
			return err
		}

		i.console.Printf("Finding files in %v...\n", dir)

		dws, err := i.findWork(filesDB, dir, pathFilter, opts)
		if err != nil {
			return err
		}

		ws = append(ws, dws...)
	}

	if opts.MaxImportedFiles != nil && len(ws) > *opts.MaxImportedFiles {
		ws = ws[:*opts.MaxImportedFiles]
	}

	if len(ws) == 0 {
		i.console.Printf("No files changed\n")
		return i.write()
	}

	i.console.Printf("Counting lines of %v files...\n", len(ws))

	err = i.computeLOC(ws)
	if err != nil {
		return err
	}

	i.console.Printf("Computing complexity of %v files...\n", len(ws))

	err = i.process(ctx, filesDB, ws, opts)
	if err != nil {
		return err
	}

	i.console.Printf("Writing results...\n")

	return i.write()
}

func (i *Importer) write() error {
	err := i.storage.WriteFiles()
	if err != nil {
		return err
	}

	return i.storage.WriteConfig()
}

func (i *Importer) findWork(filesDB *model.Files, rootDir string, pathFilter filters.FileFilter, opts *Options) ([]*work, error) {
	// A file root is filtered relative to the dir holding it
	baseDir := rootDir
	if stat, err := os.Stat(rootDir); err == nil && !stat.IsDir() {
		baseDir = filepath.Dir(rootDir)
	}

	langOf := func(path string) string {
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return ""
		}
		return languages.Detect(rel)
	}

	excludes := func(path string) bool {
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return true
		}

		candidate := model.NewFile(filepath.ToSlash(rel), 0)
		candidate.Language = langOf(path)

		return !pathFilter(candidate)
	}

	filter, err := common.CreateFileFilter(baseDir, opts.GitIgnore,
		func(path string) bool { return langOf(path) != "" },
		excludes,
	)
	if err != nil {
		return nil, err
	}

	paths, err := utils.ListFilesRecursive(rootDir, filter)
	if err != nil {
		return nil, err
	}

	head, branch := i.findGitHead(rootDir)

	now := time.Now()
	seen := map[string]bool{}
	var result []*work

	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			continue
		}

		seen[path] = true

		file := filesDB.GetOrCreate(path)
		file.Exists = true
		file.Language = langOf(path)
		file.SeenAt(now)
		if head != "" {
			file.Data[dataGitHead] = head
			file.Data[dataGitBranch] = branch
		}

		modTime := stat.ModTime().String()

		if opts.Incremental && modTime == file.Data[dataLastModified] {
			continue
		}

		result = append(result, &work{
			file:     file,
			language: file.Language,
			modTime:  modTime,
		})
	}

	i.markDeletedFiles(filesDB, rootDir, seen)

	return result, nil
}

// markDeletedFiles marks files inside rootDir that were not found by this run.
func (i *Importer) markDeletedFiles(filesDB *model.Files, rootDir string, seen map[string]bool) {
	prefix := rootDir + string(filepath.Separator)

	for _, file := range filesDB.List() {
		if file.Path != rootDir && !strings.HasPrefix(file.Path, prefix) {
			continue
		}

		if !seen[file.Path] {
			file.Exists = false
		}
	}
}

func (i *Importer) findGitHead(rootDir string) (string, string) {
	repo, err := git.PlainOpenWithOptions(rootDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", ""
	}

	head, err := repo.Head()
	if err != nil {
		return "", ""
	}

	return head.Hash().String(), head.Name().Short()
}

func (i *Importer) computeLOC(ws []*work) error {
	definedLanguages := gocloc.NewDefinedLanguages()
	options := gocloc.NewClocOptions()

	paths := lo.Map(ws, func(w *work, _ int) string { return w.file.Path })

	processor := gocloc.NewProcessor(definedLanguages, options)
	loc, err := processor.Analyze(paths)
	if err != nil {
		return errors.Wrapf(err, "error computing lines of code")
	}

	for _, w := range ws {
		size := w.file.Size

		if floc, ok := loc.Files[w.file.Path]; ok {
			size.Code = int(floc.Code)
			size.Comments = int(floc.Comments)
			size.Blanks = int(floc.Blanks)
			size.Lines = size.Code + size.Comments + size.Blanks
		}
	}

	return nil
}

func (i *Importer) process(ctx context.Context, filesDB *model.Files, ws []*work, opts *Options) error {
	group := utils.ParallelFor(ws, func(w *work) (*work, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w.functions, w.err = computeFunctions(ctx, w.file.Path, w.language)
		return w, nil
	}, utils.ParallelOptions{Routines: opts.Routines})

	bar := utils.NewProgressBar(len(ws))
	start := time.Now()

	for w := range group.Output {
		file := w.file
		utils.DescribeProgress(bar, file.Path)

		switch {
		case errors.Is(w.err, fs.ErrNotExist):
			file.Exists = false

		case w.err != nil:
			_ = bar.Clear()
			i.console.Printf("Error processing file %v: %v\n", file.Path, w.err)

		default:
			filesDB.SetFunctions(file, w.functions)
			file.Data[dataLastModified] = w.modTime
		}

		_ = bar.Add(1)

		if opts.SaveEvery != nil && time.Since(start) > *opts.SaveEvery {
			_ = bar.Clear()
			i.console.Printf("Writing partial results...\n")

			err := i.storage.WriteFiles()
			if err != nil {
				group.Abort(err)
			}

			start = time.Now()
		}
	}

	_ = bar.Finish()

	return group.Error()
}

func computeFunctions(ctx context.Context, path string, language string) ([]*model.Function, error) {
	g := treesitter.GrammarFor(language)
	if g == nil {
		return nil, errors.Errorf("unsupported language: %v", language)
	}

	root, err := treesitter.ParseFile(ctx, g, path)
	if err != nil {
		return nil, err
	}

	return lo.Map(complexity.ComputeFunctions(root), func(r complexity.Result, _ int) *model.Function {
		return &model.Function{
			Name:                 r.Name,
			Line:                 r.Line,
			Column:               r.Column,
			CognitiveComplexity:  r.CognitiveComplexity,
			CyclomaticComplexity: r.CyclomaticComplexity,
		}
	}), nil
}
