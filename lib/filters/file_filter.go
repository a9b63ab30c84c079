package filters

import "github.com/pescuma/cogmeter/lib/model"

type FileFilter func(*model.File) bool

type FunctionFilter func(*model.File, *model.Function) bool

// UsageType says what to do with the files a filter matches.
type UsageType int

const (
	DontCare UsageType = iota
	Include
	Exclude // Exclude has preference over Include
)

func (u UsageType) Merge(other UsageType) UsageType {
	switch {
	case u == other:
		return u
	case u == Exclude || other == Exclude:
		return Exclude
	default:
		return Include
	}
}

// FileFilterWithUsage combines include and exclude rules.
type FileFilterWithUsage interface {
	Filter(*model.File) UsageType

	// Decide does not receive DontCare from a group, so a file matched by no rule is
	// decided by the kind of the rules.
	Decide(u UsageType) bool
}

type usageFileFilter struct {
	filter FileFilter
	usage  UsageType
}

func (s *usageFileFilter) Filter(file *model.File) UsageType {
	if s.filter(file) {
		return s.usage
	} else {
		return DontCare
	}
}

func (s *usageFileFilter) Decide(u UsageType) bool {
	switch u {
	case Include:
		return true
	case Exclude:
		return false
	default:
		// Not matched by an include rule means excluded, and the other way around
		return s.usage == Exclude
	}
}

type usageFileFilterGroup struct {
	filters []FileFilterWithUsage
}

func (g *usageFileFilterGroup) Filter(file *model.File) UsageType {
	result := DontCare
	for _, f := range g.filters {
		result = result.Merge(f.Filter(file))
	}
	return result
}

func (g *usageFileFilterGroup) Decide(u UsageType) bool {
	switch u {
	case Include:
		return true
	case Exclude:
		return false
	default:
		result := true
		for _, f := range g.filters {
			result = result && f.Decide(u)
		}
		return result
	}
}

func LiftFileFilter(filter FileFilter, usage UsageType) FileFilterWithUsage {
	return &usageFileFilter{filter, usage}
}

func UnliftFileFilter(filter FileFilterWithUsage) FileFilter {
	return func(file *model.File) bool {
		return filter.Decide(filter.Filter(file))
	}
}

func GroupFileFilters(filters ...FileFilterWithUsage) FileFilterWithUsage {
	return &usageFileFilterGroup{filters}
}

// ParseIncludeExclude creates a filter that accepts files matching any include rule
// (or all files, when there are none) and no exclude rule.
func ParseIncludeExclude(includes []string, excludes []string) (FileFilter, error) {
	var fs []FileFilterWithUsage

	for _, rule := range includes {
		f, err := ParseFileFilter(rule)
		if err != nil {
			return nil, err
		}

		fs = append(fs, LiftFileFilter(f, Include))
	}

	for _, rule := range excludes {
		f, err := ParseFileFilter(rule)
		if err != nil {
			return nil, err
		}

		fs = append(fs, LiftFileFilter(f, Exclude))
	}

	return UnliftFileFilter(GroupFileFilters(fs...)), nil
}
