package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/cogmeter/lib/consoles"
	"github.com/pescuma/cogmeter/lib/filters"
	"github.com/pescuma/cogmeter/lib/importers/metrics"
	"github.com/pescuma/cogmeter/lib/model"
	"github.com/pescuma/cogmeter/lib/server"
	"github.com/pescuma/cogmeter/lib/storages"
	"github.com/pescuma/cogmeter/lib/storages/orm"
	"github.com/pescuma/cogmeter/lib/utils"
)

type Workspace struct {
	console consoles.Console
	storage storages.Storage
}

func NewWorkspace(file string) (*Workspace, error) {
	return NewWorkspaceWithConsole(file, consoles.NewStdOutConsole())
}

func NewWorkspaceWithConsole(file string, console consoles.Console) (*Workspace, error) {
	if file == "" {
		if _, err := os.Stat("./.cogmeter"); err == nil {
			file = "./.cogmeter/cogmeter.sqlite"
		} else {
			file = "~/.cogmeter/cogmeter.sqlite"
		}
	}

	var storage storages.Storage
	var err error
	switch {
	case file == ":memory:":
		storage, err = orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasPrefix(file, "mysql:"):
		d, derr := orm.WithMySql(strings.TrimPrefix(file, "mysql:"))
		if derr != nil {
			return nil, derr
		}

		storage, err = orm.NewGormStorage(d, console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(console, file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console: console,
		storage: storage,
	}, nil
}

func createWorkspaceDir(console consoles.Console, file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		console.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return errors.Wrapf(err, "error creating workspace at %v", path)
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Execute(f func(consoles.Console, storages.Storage) error) error {
	return f(w.console, w.storage)
}

// SetGlobalConfig stores a config value. It returns false when the value did not change.
func (w *Workspace) SetGlobalConfig(config string, value string) (bool, error) {
	if !model.IsKnownConfig(config) {
		return false, errors.Errorf("unknown config: %v", config)
	}

	if _, err := strconv.Atoi(value); err != nil {
		return false, errors.Errorf("config %v must be a number, got %v", config, value)
	}

	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return false, err
	}

	v, ok := (*cfg)[config]
	if ok && v == value {
		return false, nil
	}

	(*cfg)[config] = value

	return true, w.storage.WriteConfig()
}

func (w *Workspace) GetGlobalConfigInt(config string, def int) (int, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return 0, err
	}

	return model.ConfigInt(*cfg, config, def), nil
}

func (w *Workspace) Compute(ctx context.Context, dirs []string, opts *metrics.Options) error {
	importer := metrics.NewImporter(w.console, w.storage)
	return importer.Import(ctx, dirs, opts)
}

// Stats aggregates the stored results. A nil threshold uses the one in the config.
func (w *Workspace) Stats(threshold *int) (*metrics.Stats, error) {
	if threshold == nil {
		t, err := w.GetGlobalConfigInt(model.ConfigThreshold, model.DefaultThreshold)
		if err != nil {
			return nil, err
		}

		threshold = &t
	}

	computer := metrics.NewComputer(w.console, w.storage)
	return computer.Compute(*threshold)
}

type FunctionInfo struct {
	File     *model.File
	Function *model.Function
}

// ListFunctions returns the functions of existing files that match the filter rules.
// Multiple rules must all match.
func (w *Workspace) ListFunctions(rules []string) ([]FunctionInfo, error) {
	var fs []filters.FunctionFilter
	for _, rule := range rules {
		f, err := filters.ParseFunctionFilter(rule)
		if err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}

	files, err := w.storage.LoadFiles()
	if err != nil {
		return nil, err
	}

	var result []FunctionInfo
	for _, file := range files.ListExisting() {
		for _, fn := range file.Functions {
			if matchesAll(fs, file, fn) {
				result = append(result, FunctionInfo{file, fn})
			}
		}
	}

	return result, nil
}

func matchesAll(fs []filters.FunctionFilter, file *model.File, fn *model.Function) bool {
	for _, f := range fs {
		if !f(file, fn) {
			return false
		}
	}
	return true
}

func (w *Workspace) Serve(opts *server.Options) error {
	return server.Run(w.console, w.storage, opts)
}
