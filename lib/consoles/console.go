package consoles

import "io"

type Console interface {
	Printf(format string, a ...any)

	PushPrefix(format string, a ...any)
	PopPrefix()

	// Prepare returns the text as Printf would output it.
	Prepare(format string, a ...any) string

	// Writer prefixes every line written to it like Printf does.
	Writer() io.Writer
}
