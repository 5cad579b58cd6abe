package runner

import "slices"

const (
	flagDebugWebpacker   = "--debug-webpacker"
	flagDebugShakapacker = "--debug-shakapacker"
	flagTraceDeprecation = "--trace-deprecation"
	flagNoDeprecation    = "--no-deprecation"
)

// webpackCommands reject the --config option.
var webpackCommands = []string{
	"help",
	"h",
	"--help",
	"-h",
	"version",
	"v",
	"--version",
	"-v",
	"info",
	"i",
}

// Deprecation names a deprecated flag and its replacement.
type Deprecation struct {
	Old string
	New string
}

// extraction is the result of stripping launcher flags from the raw args.
type extraction struct {
	args         []string      // args forwarded to webpack
	nodeOptions  []string      // options appended to NODE_OPTIONS, in order
	deprecations []Deprecation // deprecated flags seen
}

// extractFlags removes the flags handled by the launcher. The input slice is
// not modified.
func extractFlags(argv []string) extraction {
	var ex extraction

	// Checked before removal so the notice fires even when
	// --debug-shakapacker is also given.
	if slices.Contains(argv, flagDebugWebpacker) {
		ex.deprecations = append(ex.deprecations, Deprecation{Old: flagDebugWebpacker, New: flagDebugShakapacker})
	}

	rest, found := without(argv, flagDebugShakapacker, flagDebugWebpacker)
	if found {
		ex.nodeOptions = append(ex.nodeOptions, "--inspect-brk")
	}

	rest, found = without(rest, flagTraceDeprecation)
	if found {
		ex.nodeOptions = append(ex.nodeOptions, flagTraceDeprecation)
	}

	rest, found = without(rest, flagNoDeprecation)
	if found {
		ex.nodeOptions = append(ex.nodeOptions, flagNoDeprecation)
	}

	ex.args = rest
	return ex
}

// without returns args with every occurrence of flags removed, and whether
// anything was removed.
func without(args []string, flags ...string) ([]string, bool) {
	rest := make([]string, 0, len(args))
	found := false
	for _, arg := range args {
		if slices.Contains(flags, arg) {
			found = true
			continue
		}
		rest = append(rest, arg)
	}
	return rest, found
}

// hasWebpackCommand reports whether args name a webpack subcommand that is
// incompatible with --config.
func hasWebpackCommand(args []string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return slices.Contains(webpackCommands, arg)
	})
}

// appendNodeOptions appends each option to base, space separated. An empty
// base still gets the leading space.
func appendNodeOptions(base string, options []string) string {
	for _, opt := range options {
		base += " " + opt
	}
	return base
}
