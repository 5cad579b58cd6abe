// Package runner builds the webpack command line and environment used by the
// shakapacker launchers. Nothing in this package starts a process.
package runner

import (
	"runtime"
	"slices"
	"strings"
)

// foldEnvKeys makes Environ match keys case-insensitively, as Windows does.
var foldEnvKeys = runtime.GOOS == "windows"

func envKey(key string) string {
	if foldEnvKeys {
		return strings.ToUpper(key)
	}
	return key
}

// Command describes a process launch.
type Command struct {
	Program string            // argv[0]
	Args    []string          // arguments after Program
	Env     map[string]string // overlay applied over the inherited environment
	Dir     string            // working directory
}

// Argv returns the full argument vector, program first.
func (c *Command) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// Environ applies Env over base, a list of KEY=VALUE entries such as
// os.Environ(). Existing keys keep their position, new keys are appended in
// sorted order. On Windows keys match regardless of case and the overlay's
// spelling wins.
func (c *Command) Environ(base []string) []string {
	overlay := make(map[string]string, len(c.Env))
	for key := range c.Env {
		overlay[envKey(key)] = key
	}

	env := make([]string, 0, len(base)+len(c.Env))
	seen := make(map[string]bool, len(c.Env))

	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		key, ok := overlay[envKey(name)]
		if !ok {
			env = append(env, kv)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		env = append(env, key+"="+c.Env[key])
	}

	keys := make([]string, 0, len(c.Env))
	for key := range c.Env {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	for _, key := range keys {
		env = append(env, key+"="+c.Env[key])
	}

	return env
}
