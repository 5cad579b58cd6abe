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

var rootCmd = &cobra.Command{
	Use:   "shakapacker-dev-server [webpack serve arguments]",
	Short: "Run webpack serve with the application's shakapacker configuration",
	Long: `shakapacker-dev-server runs "webpack serve" from the application root.

Dev server settings come from the environment:
  SHAKAPACKER_DEV_SERVER_HTTPS    allow --https (default false)
  SHAKAPACKER_DEV_SERVER_HMR      true, false or only (default false)
  SHAKAPACKER_DEV_SERVER_PRETTY   add --progress --color (default false)

--host and --port are rejected; set them in shakapacker.yml.

A first argument of __complete or __completeNoDesc is cobra's shell
completion request and is not forwarded.`,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runDevServer,
}

func runDevServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(loadOptions)
	if err != nil {
		return err
	}

	logger, err := output.NewLogger(cmd.ErrOrStderr(), "shakapacker-dev-server", cfg.LogLevel)
	if err != nil {
		return err
	}

	r := &runner.DevServerRunner{Options: cfg.RunnerOptions(), DevServer: cfg.DevServer}
	command, deprecations, err := r.Build(args)
	if err != nil {
		return err
	}
	for _, d := range deprecations {
		output.PrintDeprecation(cmd.ErrOrStderr(), d)
	}

	logger.Debug("launching webpack dev server",
		"version", Version,
		"cmd", output.CommandLine(command.Argv()),
		"dir", command.Dir,
		"hmr", cfg.DevServer.HMR)

	return executor.Exec(command)
}
