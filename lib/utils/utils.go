package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aquilax/truncate"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func Take[T any](l []T, i int) []T {
	if i < 0 {
		i = Max(0, len(l)+i)
	} else {
		i = Min(i, len(l))
	}
	return l[:i]
}

func Last[T any](l []T) T {
	return l[len(l)-1]
}

func RemoveLast[T any](l []T) []T {
	return l[:len(l)-1]
}

func Min[T constraints.Ordered](a T, bs ...T) T {
	result := a
	for _, b := range bs {
		if result > b {
			result = b
		}
	}
	return result
}

func Max[T constraints.Ordered](a T, bs ...T) T {
	result := a
	for _, b := range bs {
		if result < b {
			result = b
		}
	}
	return result
}

func IIf[T any](test bool, ifTrue, ifFalse T) T {
	if test {
		return ifTrue
	} else {
		return ifFalse
	}
}

func IsTrue(v string) bool {
	v = strings.ToLower(v)
	return v != "false" && v != "f" && v != "no" && v != "n" && v != ""
}

func PathAbs(path string) (string, error) {
	if strings.HasPrefix(filepath.ToSlash(path), "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "error finding home dir")
		}

		path = filepath.Join(home, path[2:])
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "error making %v absolute", path)
	}

	return path, nil
}

func FileExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil

	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil

	} else {
		return false, err
	}
}

// TruncatePath keeps the end of a path, which holds the most useful part of it.
func TruncatePath(path string, size int) string {
	if size <= 0 || len(path) <= size {
		return path
	}

	return truncate.Truncate(path, size, "...", truncate.PositionStart)
}
