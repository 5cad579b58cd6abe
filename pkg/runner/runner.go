package runner

import (
	"io/fs"
	"maps"
	"os"
)

const (
	// EnvShakapackerConfig carries the shakapacker.yml path to webpack.
	EnvShakapackerConfig = "SHAKAPACKER_CONFIG"
	// EnvNodeOptions is read from the host and extended with debug options.
	EnvNodeOptions = "NODE_OPTIONS"
	// EnvWebpackServe marks a dev-server launch.
	EnvWebpackServe = "WEBPACK_SERVE"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Options are the resolved inputs shared by both launchers.
type Options struct {
	AppPath            string            // working directory for webpack
	ShakapackerConfig  string            // exported as SHAKAPACKER_CONFIG
	WebpackConfig      string            // passed with --config
	NodeModulesBinPath string            // directory holding the local webpack binary
	NodeOptions        string            // inherited NODE_OPTIONS
	CompilerEnv        map[string]string // base environment overlay
	FS                 FileSystem        // nil means RealFileSystem
}

// WebpackBin returns the path of the local webpack executable. The path is
// not cleaned: a bin path of "." must stay "./webpack" so exec does not
// search $PATH for it.
func (o *Options) WebpackBin() string {
	return o.NodeModulesBinPath + "/webpack"
}

// nodeModulesBinExist reports whether a regular file exists at WebpackBin.
func (o *Options) nodeModulesBinExist() bool {
	fsys := o.FS
	if fsys == nil {
		fsys = &RealFileSystem{}
	}
	info, err := fsys.Stat(o.WebpackBin())
	return err == nil && info.Mode().IsRegular()
}

// launcher returns the command prefix: the local binary when installed,
// otherwise webpack through yarn.
func (o *Options) launcher() []string {
	if o.nodeModulesBinExist() {
		return []string{o.WebpackBin()}
	}
	return []string{"yarn", "webpack"}
}

// env builds the environment overlay for a launch.
func (o *Options) env(nodeOptions []string) map[string]string {
	env := make(map[string]string, len(o.CompilerEnv)+2)
	maps.Copy(env, o.CompilerEnv)
	env[EnvShakapackerConfig] = o.ShakapackerConfig
	env[EnvNodeOptions] = appendNodeOptions(o.NodeOptions, nodeOptions)
	return env
}

// WebpackRunner builds the command behind bin/shakapacker.
type WebpackRunner struct {
	Options
}

// Build assembles the webpack command for argv. Launcher flags are removed
// from the forwarded arguments; deprecated ones are reported so the caller can
// warn about them.
func (r *WebpackRunner) Build(argv []string) (*Command, []Deprecation) {
	ex := extractFlags(argv)

	cmd := r.launcher()
	if !hasWebpackCommand(ex.args) {
		cmd = append(cmd, "--config", r.WebpackConfig)
	}
	cmd = append(cmd, ex.args...)

	return &Command{
		Program: cmd[0],
		Args:    cmd[1:],
		Env:     r.env(ex.nodeOptions),
		Dir:     r.AppPath,
	}, ex.deprecations
}
