package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/shakapacker/pkg/config"
	"github.com/vertti/shakapacker/pkg/exec"
	"github.com/vertti/shakapacker/pkg/output"
	"github.com/vertti/shakapacker/pkg/runner"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	executor    exec.Executor = &exec.RealExecutor{}
	loadOptions config.LoadOptions
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		output.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// Flag parsing is disabled: everything except the launcher flags belongs to
// webpack, including --help and --version.
var rootCmd = &cobra.Command{
	Use:   "shakapacker [webpack arguments]",
	Short: "Run webpack with the application's shakapacker configuration",
	Long: `shakapacker runs webpack from the application root with config/webpack/webpack.config.js.

Launcher flags (not forwarded to webpack):
  --debug-shakapacker   start node with --inspect-brk
  --trace-deprecation   pass --trace-deprecation to node
  --no-deprecation      pass --no-deprecation to node

A first argument of __complete or __completeNoDesc is cobra's shell
completion request and is not forwarded.`,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runWebpack,
}

func runWebpack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(loadOptions)
	if err != nil {
		return err
	}

	logger, err := output.NewLogger(cmd.ErrOrStderr(), "shakapacker", cfg.LogLevel)
	if err != nil {
		return err
	}

	r := &runner.WebpackRunner{Options: cfg.RunnerOptions()}
	command, deprecations := r.Build(args)
	for _, d := range deprecations {
		output.PrintDeprecation(cmd.ErrOrStderr(), d)
	}

	logger.Debug("launching webpack",
		"version", Version,
		"cmd", output.CommandLine(command.Argv()),
		"dir", command.Dir)

	return executor.Exec(command)
}
