package common

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/pescuma/cogmeter/lib/utils"
)

// CreateFileFilter creates the filter used to walk rootDir. It skips dot files and
// dirs, vendored code, and files matched by excludes or by the root .gitignore.
func CreateFileFilter(rootDir string, gitignore bool,
	defaultMatcher func(path string) bool,
	excludes func(path string) bool,
) (func(path string, isDir bool) bool, error) {
	if excludes == nil {
		excludes = func(path string) bool {
			return false
		}
	}

	var ignored func(path string) bool
	if gitignore {
		matcher, err := utils.FindGitIgnore(rootDir)
		if err != nil {
			return nil, err
		}

		ignored = matcher
	}

	return func(path string, isDir bool) bool {
		if isDir && path == rootDir {
			return true
		}

		name := filepath.Base(path)
		if strings.HasPrefix(name, ".") {
			return false
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return false
		}
		rel = filepath.ToSlash(rel)

		if isDir {
			rel += "/"
		}

		if enry.IsVendor(rel) {
			return false
		}

		if ignored != nil && ignored(utils.IIf(isDir, path+string(filepath.Separator), path)) {
			return false
		}

		if isDir {
			return true
		}

		if excludes(path) {
			return false
		}

		return defaultMatcher(path)
	}, nil
}
