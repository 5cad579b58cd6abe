//go:build unix

package exec

import (
	"fmt"
	"os"
	"syscall"

	"github.com/vertti/shakapacker/pkg/runner"
)

var (
	execFunc  = syscall.Exec
	chdirFunc = os.Chdir
)

// Exec replaces the current process with cmd using syscall.Exec.
func (e *RealExecutor) Exec(cmd *runner.Command) error {
	if cmd.Dir != "" {
		if err := chdirFunc(cmd.Dir); err != nil {
			return fmt.Errorf("failed to change directory to %s: %w", cmd.Dir, err)
		}
	}

	binary, err := lookPath(cmd.Program)
	if err != nil {
		return err
	}

	// #nosec G204 -- the command line is the user's webpack invocation.
	if err := execFunc(binary, cmd.Argv(), cmd.Environ(environ())); err != nil {
		return fmt.Errorf("failed to exec %s: %w", binary, err)
	}
	return nil
}
