package filters

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"

	"github.com/pescuma/cogmeter/lib/model"
)

// ParseFileFilter parses rules like "src/**/*.go & !**/*_test.go | lang:java".
func ParseFileFilter(rule string) (FileFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(file *model.File) bool {
			return true
		}, nil

	case strings.Contains(rule, "|"):
		clauses, err := ParseFileFilterList(splitRules(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(file *model.File) bool {
			for _, f := range clauses {
				if f(file) {
					return true
				}
			}
			return false
		}, nil

	case strings.Contains(rule, "&"):
		clauses, err := ParseFileFilterList(splitRules(rule, "&"))
		if err != nil {
			return nil, err
		}

		return func(file *model.File) bool {
			for _, f := range clauses {
				if !f(file) {
					return false
				}
			}
			return true
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParseFileFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(file *model.File) bool {
			return !f(file)
		}, nil

	case strings.HasPrefix(rule, "id:"):
		id, err := model.StringToID(strings.TrimSpace(rule[3:]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid file id: %v", rule)
		}

		return func(file *model.File) bool {
			return file.ID == id
		}, nil

	case strings.HasPrefix(rule, "lang:"):
		langs := set.From[string](strings.Split(strings.ToLower(rule[5:]), ","))

		return func(file *model.File) bool {
			return langs.Contains(strings.ToLower(file.Language))
		}, nil

	default:
		if !doublestar.ValidatePathPattern(rule) {
			return nil, errors.Errorf("invalid file glob: %v", rule)
		}

		return func(file *model.File) bool {
			m, err := doublestar.PathMatch(rule, file.Path)
			return err == nil && m
		}, nil
	}
}

func ParseFileFilterList(rules []string) ([]FileFilter, error) {
	result := make([]FileFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParseFileFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}
