package utils

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	ignore "github.com/sabhiram/go-gitignore"
)

// ListFilesRecursive walks dir and returns the files accepted by filter. Directories
// rejected by filter are not entered. Errors reading dir itself are returned, errors
// below it skip the entry.
func ListFilesRecursive(dir string, filter func(path string, isDir bool) bool) ([]string, error) {
	var result []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		switch {
		case err != nil && path == dir:
			return err

		case err != nil:
			return nil

		case entry.IsDir():
			return IIf(filter(path, true), nil, filepath.SkipDir)

		default:
			if filter(path, false) {
				result = append(result, path)
			}
			return nil
		}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error listing files in %v", dir)
	}

	return result, nil
}

// FindGitIgnore returns a matcher for the .gitignore at rootDir, or nil if there is
// none. The matcher receives absolute paths, with a trailing separator for dirs.
func FindGitIgnore(rootDir string) (func(path string) bool, error) {
	file := filepath.Join(rootDir, ".gitignore")

	exists, err := FileExists(file)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	gi, err := ignore.CompileIgnoreFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %v", file)
	}

	return func(path string) bool {
		rel, err := filepath.Rel(rootDir, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return false
		}

		rel = filepath.ToSlash(rel)
		if strings.HasSuffix(path, string(filepath.Separator)) && !strings.HasSuffix(rel, "/") {
			rel += "/"
		}

		return gi.MatchesPath(rel)
	}, nil
}
