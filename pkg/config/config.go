// Package config resolves launcher settings from the application directory
// and the SHAKAPACKER_* environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/vertti/shakapacker/pkg/runner"
)

// EnvPrefix is the prefix of every environment variable read by Load, apart
// from NODE_OPTIONS.
const EnvPrefix = "SHAKAPACKER"

// ErrWebpackConfigNotFound is returned when the application has no webpack
// config file.
var ErrWebpackConfigNotFound = errors.New("webpack config not found")

// compilerEnvKeys are forwarded to webpack when set on the host.
var compilerEnvKeys = []string{"asset_host", "relative_url_root"}

// Config holds the resolved settings for a launch.
type Config struct {
	AppPath            string
	ShakapackerConfig  string
	WebpackConfig      string
	NodeModulesBinPath string
	NodeOptions        string
	CompilerEnv        map[string]string
	DevServer          runner.DevServer
	LogLevel           string
}

// LoadOptions controls Load.
type LoadOptions struct {
	// AppPath overrides the working directory as the application root.
	AppPath string
	// FS is used to find the webpack config. Nil means the real file system.
	FS runner.FileSystem
}

// Load resolves the settings for the application at opts.AppPath.
func Load(opts LoadOptions) (*Config, error) {
	appPath, err := resolveAppPath(opts.AppPath)
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = &runner.RealFileSystem{}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("node_options", runner.EnvNodeOptions); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", runner.EnvNodeOptions, err)
	}

	v.SetDefault("config", filepath.Join(appPath, "config", "shakapacker.yml"))
	v.SetDefault("node_modules_bin_path", filepath.Join(appPath, "node_modules", ".bin"))
	v.SetDefault("node_options", "")
	v.SetDefault("dev_server.https", false)
	v.SetDefault("dev_server.hmr", string(runner.HMROff))
	v.SetDefault("dev_server.pretty", false)
	v.SetDefault("log_level", "info")

	webpackConfig, err := findWebpackConfig(fsys, appPath)
	if err != nil {
		return nil, err
	}

	hmr, err := runner.ParseHMR(v.GetString("dev_server.hmr"))
	if err != nil {
		return nil, fmt.Errorf("%s_DEV_SERVER_HMR: %w", EnvPrefix, err)
	}

	compilerEnv := make(map[string]string)
	for _, key := range compilerEnvKeys {
		if value := v.GetString(key); value != "" {
			compilerEnv[envName(key)] = value
		}
	}

	return &Config{
		AppPath:            appPath,
		ShakapackerConfig:  v.GetString("config"),
		WebpackConfig:      webpackConfig,
		NodeModulesBinPath: v.GetString("node_modules_bin_path"),
		NodeOptions:        v.GetString("node_options"),
		CompilerEnv:        compilerEnv,
		DevServer: runner.DevServer{
			HTTPS:  v.GetBool("dev_server.https"),
			HMR:    hmr,
			Pretty: v.GetBool("dev_server.pretty"),
		},
		LogLevel: v.GetString("log_level"),
	}, nil
}

// RunnerOptions returns the command builder inputs.
func (c *Config) RunnerOptions() runner.Options {
	return runner.Options{
		AppPath:            c.AppPath,
		ShakapackerConfig:  c.ShakapackerConfig,
		WebpackConfig:      c.WebpackConfig,
		NodeModulesBinPath: c.NodeModulesBinPath,
		NodeOptions:        c.NodeOptions,
		CompilerEnv:        c.CompilerEnv,
	}
}

func resolveAppPath(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve app path %s: %w", path, err)
	}
	return abs, nil
}

// findWebpackConfig prefers webpack.config.js and falls back to
// webpack.config.ts.
func findWebpackConfig(fsys runner.FileSystem, appPath string) (string, error) {
	dir := filepath.Join(appPath, "config", "webpack")
	js := filepath.Join(dir, "webpack.config.js")
	ts := filepath.Join(dir, "webpack.config.ts")

	for _, path := range []string{js, ts} {
		if _, err := fsys.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: %s, please run 'bundle exec rails shakapacker:install' to install Shakapacker with default configs or add the missing config file for your custom environment",
		ErrWebpackConfigNotFound, js)
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}
