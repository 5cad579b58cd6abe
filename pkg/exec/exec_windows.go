//go:build windows

package exec

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/vertti/shakapacker/pkg/runner"
)

// Exec runs cmd as a child with the parent's stdio and waits for it.
// Windows has no call that replaces the current process, so a non-zero exit
// is returned as *ExitError for the caller to mirror.
func (e *RealExecutor) Exec(cmd *runner.Command) error {
	binary, err := lookPath(cmd.Program)
	if err != nil {
		return err
	}

	// #nosec G204 -- the command line is the user's webpack invocation.
	child := exec.Command(binary, cmd.Args...)
	child.Dir = cmd.Dir
	child.Env = cmd.Environ(environ())
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("failed to run %s: %w", binary, err)
	}
	return nil
}
