package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

// NewLogger returns a logger writing to w at the named level
// (debug, info, warn, error or fatal).
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  lvl,
	}), nil
}

// CommandLine renders argv as a bash command line, quoting where needed.
func CommandLine(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			// Quote rejects strings bash cannot represent, such as NUL bytes.
			quoted = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, " ")
}
