package filters

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ParseStringFilter matches case-insensitively: re: prefix for regular expressions,
// * as a wildcard, or the whole text.
func ParseStringFilter(rule string) (func(string) bool, error) {
	rule = strings.TrimSpace(rule)

	if rule == "" {
		return func(s string) bool {
			return true
		}, nil

	} else if strings.HasPrefix(rule, "re:") {
		re, err := regexp.Compile("(?i)" + strings.TrimPrefix(rule, "re:"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid RE: %v", rule)
		}

		return re.MatchString, nil

	} else if strings.Contains(rule, "*") {
		parts := strings.Split(rule, "*")
		for i := range parts {
			parts[i] = regexp.QuoteMeta(parts[i])
		}

		re, err := regexp.Compile("(?i)^" + strings.Join(parts, ".*") + "$")
		if err != nil {
			return nil, errors.Wrapf(err, "invalid filter: %v", rule)
		}

		return re.MatchString, nil

	} else {
		return func(s string) bool {
			return strings.EqualFold(s, rule)
		}, nil
	}
}

func splitRules(rule string, sep string) []string {
	var result []string
	for _, r := range strings.Split(rule, sep) {
		r = strings.TrimSpace(r)
		if r != "" {
			result = append(result, r)
		}
	}
	return result
}
