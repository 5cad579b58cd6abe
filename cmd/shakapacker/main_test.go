package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/shakapacker/pkg/config"
	"github.com/vertti/shakapacker/pkg/exec"
	"github.com/vertti/shakapacker/pkg/runner"
)

type captureExecutor struct {
	cmd *runner.Command
	err error
}

func (c *captureExecutor) Exec(cmd *runner.Command) error {
	c.cmd = cmd
	return c.err
}

// setupApp creates an application root and points the command at it. The
// local webpack binary is only installed when withBin is true.
func setupApp(t *testing.T, withBin bool) (string, *captureExecutor) {
	t.Helper()
	for _, key := range []string{"SHAKAPACKER_CONFIG", "SHAKAPACKER_NODE_MODULES_BIN_PATH", "SHAKAPACKER_LOG_LEVEL", "NODE_OPTIONS"} {
		t.Setenv(key, "")
	}

	app := t.TempDir()
	files := []string{"config/webpack/webpack.config.js"}
	if withBin {
		files = append(files, "node_modules/.bin/webpack")
	}
	for _, f := range files {
		path := filepath.Join(app, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o755))
	}

	capture := &captureExecutor{}
	oldExecutor, oldLoad := executor, loadOptions
	executor, loadOptions = capture, config.LoadOptions{AppPath: app}
	t.Cleanup(func() { executor, loadOptions = oldExecutor, oldLoad })

	return app, capture
}

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunWebpack_LocalBinary(t *testing.T) {
	app, capture := setupApp(t, true)

	_, err := executeCommand("serve", "--quiet")
	require.NoError(t, err)

	require.NotNil(t, capture.cmd)
	assert.Equal(t, []string{
		filepath.Join(app, "node_modules", ".bin", "webpack"),
		"--config", filepath.Join(app, "config", "webpack", "webpack.config.js"),
		"serve", "--quiet",
	}, capture.cmd.Argv())
	assert.Equal(t, app, capture.cmd.Dir)
	assert.Equal(t, filepath.Join(app, "config", "shakapacker.yml"), capture.cmd.Env["SHAKAPACKER_CONFIG"])
}

func TestRunWebpack_YarnVersion(t *testing.T) {
	_, capture := setupApp(t, false)

	_, err := executeCommand("version")
	require.NoError(t, err)

	assert.Equal(t, []string{"yarn", "webpack", "version"}, capture.cmd.Argv())
}

func TestRunWebpack_HelpFlagIsForwarded(t *testing.T) {
	_, capture := setupApp(t, false)

	out, err := executeCommand("--help")
	require.NoError(t, err)

	assert.NotContains(t, out, "Launcher flags")
	assert.Equal(t, []string{"yarn", "webpack", "--help"}, capture.cmd.Argv())
}

func TestRunWebpack_DebugFlags(t *testing.T) {
	_, capture := setupApp(t, false)
	t.Setenv("NODE_OPTIONS", "--max-old-space-size=4096")

	out, err := executeCommand("--debug-webpacker", "--trace-deprecation", "--watch")
	require.NoError(t, err)

	assert.Contains(t, out, "DEPRECATION NOTICE")
	assert.Contains(t, out, "--debug-shakapacker")
	assert.Equal(t, "--max-old-space-size=4096 --inspect-brk --trace-deprecation", capture.cmd.Env["NODE_OPTIONS"])
	assert.NotContains(t, capture.cmd.Args, "--debug-webpacker")
	assert.NotContains(t, capture.cmd.Args, "--trace-deprecation")
	assert.Contains(t, capture.cmd.Args, "--watch")
}

func TestRunWebpack_MissingWebpackConfig(t *testing.T) {
	app, capture := setupApp(t, true)
	require.NoError(t, os.Remove(filepath.Join(app, "config", "webpack", "webpack.config.js")))

	_, err := executeCommand()

	require.ErrorIs(t, err, config.ErrWebpackConfigNotFound)
	assert.Nil(t, capture.cmd)
}

func TestRunWebpack_ExecError(t *testing.T) {
	_, capture := setupApp(t, true)
	capture.err = &exec.ExitError{Code: 2}

	_, err := executeCommand()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunWebpack_InvalidLogLevel(t *testing.T) {
	_, capture := setupApp(t, true)
	t.Setenv("SHAKAPACKER_LOG_LEVEL", "loud")

	_, err := executeCommand()

	require.Error(t, err)
	assert.Nil(t, capture.cmd)
}

func TestRunWebpack_CompletionRequestNotForwarded(t *testing.T) {
	_, capture := setupApp(t, true)
	// cobra keeps the completion request command attached once it has run.
	t.Cleanup(rootCmd.ResetCommands)

	_, _ = executeCommand("__complete", "")

	assert.Nil(t, capture.cmd)
	assert.Contains(t, rootCmd.Long, "__complete")
}
