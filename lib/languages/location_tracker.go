package languages

import (
	"fmt"
	"strings"

	"github.com/pescuma/cogmeter/lib/utils"
)

// LocationTracker keeps the stack of enclosing types and functions while a front end
// walks a file, so functions can be reported with qualified names.
type LocationTracker struct {
	path      string
	names     []string
	className []string
	function  []functionInfo
}

type functionInfo struct {
	name      string
	anonymous int
}

func NewLocationTracker(path string) *LocationTracker {
	return &LocationTracker{
		path:      path,
		className: []string{""},
		function:  []functionInfo{{}},
	}
}

func (l *LocationTracker) Path() string {
	return l.path
}

func (l *LocationTracker) IsInsideClass() bool {
	return len(l.className) > 1
}

func (l *LocationTracker) CurrentClassName() string {
	return utils.Last(l.className)
}

func (l *LocationTracker) IsInsideFunction() bool {
	return utils.Last(l.function).name != ""
}

func (l *LocationTracker) CurrentFunctionName() string {
	return utils.Last(l.function).name
}

// CurrentName is the qualified name of the innermost function or class.
func (l *LocationTracker) CurrentName() string {
	return strings.Join(l.names, ".")
}

func (l *LocationTracker) EnterClass(name string) {
	if len(l.className) > 1 {
		name = utils.Last(l.className) + "." + name
	}

	l.className = append(l.className, name)
	l.names = append(l.names, utils.Last(strings.Split(name, ".")))
}

func (l *LocationTracker) ExitClass() {
	l.names = utils.RemoveLast(l.names)
	l.className = utils.RemoveLast(l.className)
}

// EnterFunction pushes a function. An empty name gets a numbered placeholder, unique
// inside the enclosing function.
func (l *LocationTracker) EnterFunction(name string) string {
	if name == "" {
		parent := &l.function[len(l.function)-1]
		parent.anonymous++
		name = fmt.Sprintf("<anonymous_%v>", parent.anonymous)
	}

	l.function = append(l.function, functionInfo{name: name})
	l.names = append(l.names, name)

	return l.CurrentName()
}

func (l *LocationTracker) ExitFunction() {
	l.names = utils.RemoveLast(l.names)
	l.function = utils.RemoveLast(l.function)
}
