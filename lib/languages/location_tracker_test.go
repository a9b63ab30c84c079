package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationQualifiedNames(t *testing.T) {
	t.Parallel()

	l := NewLocationTracker("a.java")

	assert.False(t, l.IsInsideClass())

	l.EnterClass("A")
	l.EnterClass("B")
	assert.Equal(t, "A.B", l.CurrentClassName())

	assert.Equal(t, "A.B.run", l.EnterFunction("run"))
	assert.True(t, l.IsInsideFunction())
	assert.Equal(t, "A.B.run.<anonymous_1>", l.EnterFunction(""))
	l.ExitFunction()
	assert.Equal(t, "A.B.run.<anonymous_2>", l.EnterFunction(""))
	l.ExitFunction()
	l.ExitFunction()

	l.ExitClass()
	assert.Equal(t, "A", l.CurrentName())
	l.ExitClass()

	assert.Equal(t, "", l.CurrentName())
	assert.Equal(t, "a.java", l.Path())
}
