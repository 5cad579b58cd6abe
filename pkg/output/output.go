// Package output prints launcher notices and diagnostics to the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/shakapacker/pkg/runner"
)

var (
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		yellow, red, reset = "", "", ""
	}
}

// DeprecationMessage returns the notice for a deprecated flag.
func DeprecationMessage(d runner.Deprecation) string {
	return fmt.Sprintf("DEPRECATION NOTICE:\nConsider using `%s` instead of the deprecated `%s`.", d.New, d.Old)
}

// PrintDeprecation writes a deprecation notice in yellow.
func PrintDeprecation(w io.Writer, d runner.Deprecation) {
	_, _ = fmt.Fprintf(w, "%s%s%s\n", yellow, DeprecationMessage(d), reset)
}

// PrintError writes a fatal launcher error in red.
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s%v%s\n", red, err, reset)
}
