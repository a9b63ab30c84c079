package filters

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/pescuma/cogmeter/lib/model"
)

var thresholdRE = regexp.MustCompile(`^(cognitive|cyclomatic|line)\s*(>=|<=|!=|>|<|=)\s*(\d+)$`)

// ParseFunctionFilter parses rules over functions. Besides the file rules, it accepts
// name:<glob> (where * stops at dots and ** does not), re:<regexp> over the name, and
// thresholds like cognitive>=15.
func ParseFunctionFilter(rule string) (FunctionFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(*model.File, *model.Function) bool {
			return true
		}, nil

	case strings.Contains(rule, "|"):
		clauses, err := parseFunctionFilterList(splitRules(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(file *model.File, fn *model.Function) bool {
			for _, f := range clauses {
				if f(file, fn) {
					return true
				}
			}
			return false
		}, nil

	case strings.Contains(rule, "&"):
		clauses, err := parseFunctionFilterList(splitRules(rule, "&"))
		if err != nil {
			return nil, err
		}

		return func(file *model.File, fn *model.Function) bool {
			for _, f := range clauses {
				if !f(file, fn) {
					return false
				}
			}
			return true
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParseFunctionFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(file *model.File, fn *model.Function) bool {
			return !f(file, fn)
		}, nil

	case strings.HasPrefix(rule, "name:"):
		g, err := glob.Compile(strings.TrimSpace(rule[5:]), '.')
		if err != nil {
			return nil, errors.Wrapf(err, "invalid name glob: %v", rule)
		}

		return func(_ *model.File, fn *model.Function) bool {
			return g.Match(fn.Name)
		}, nil

	case strings.HasPrefix(rule, "re:"):
		f, err := ParseStringFilter(rule)
		if err != nil {
			return nil, err
		}

		return func(_ *model.File, fn *model.Function) bool {
			return f(fn.Name)
		}, nil

	case strings.HasPrefix(rule, "fn:"):
		id, err := model.StringToID(strings.TrimSpace(rule[3:]))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid function id: %v", rule)
		}

		return func(_ *model.File, fn *model.Function) bool {
			return fn.ID == id
		}, nil

	case thresholdRE.MatchString(rule):
		return parseThreshold(rule)

	default:
		f, err := ParseFileFilter(rule)
		if err != nil {
			return nil, err
		}

		return func(file *model.File, _ *model.Function) bool {
			return f(file)
		}, nil
	}
}

func parseThreshold(rule string) (FunctionFilter, error) {
	parts := thresholdRE.FindStringSubmatch(rule)

	limit, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid threshold: %v", rule)
	}

	var value func(fn *model.Function) int
	switch parts[1] {
	case "cognitive":
		value = func(fn *model.Function) int { return fn.CognitiveComplexity }
	case "cyclomatic":
		value = func(fn *model.Function) int { return fn.CyclomaticComplexity }
	default:
		value = func(fn *model.Function) int { return fn.Line }
	}

	var compare func(a, b int) bool
	switch parts[2] {
	case ">=":
		compare = func(a, b int) bool { return a >= b }
	case "<=":
		compare = func(a, b int) bool { return a <= b }
	case "!=":
		compare = func(a, b int) bool { return a != b }
	case ">":
		compare = func(a, b int) bool { return a > b }
	case "<":
		compare = func(a, b int) bool { return a < b }
	default:
		compare = func(a, b int) bool { return a == b }
	}

	return func(_ *model.File, fn *model.Function) bool {
		return compare(value(fn), limit)
	}, nil
}

func parseFunctionFilterList(rules []string) ([]FunctionFilter, error) {
	result := make([]FunctionFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParseFunctionFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}
