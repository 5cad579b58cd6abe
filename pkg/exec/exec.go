// Package exec hands the process over to a built runner.Command.
package exec

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/vertti/shakapacker/pkg/runner"
)

// Executor launches a command in place of the current process.
type Executor interface {
	// Exec changes into cmd.Dir and replaces the current process with cmd.
	// On Unix it only returns on failure. On Windows the child is run to
	// completion and a non-zero exit is reported as *ExitError.
	Exec(cmd *runner.Command) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// ExitError reports the exit code of a child that ran to completion.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
