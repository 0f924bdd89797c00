// Package corelog is the library's internal verbose-tracing sink. It
// stays silent (writes to io.Discard) unless a caller opts in; library
// packages must not own global log state.
package corelog

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "iworkdoc: ", log.LstdFlags)

// SetOutput redirects verbose tracing, e.g. to os.Stderr. Nothing in this
// module calls it, so tracing stays silent unless a caller opts in.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}
