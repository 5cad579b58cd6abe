package runner

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedSwitch is returned when argv carries a switch the dev
	// server settings own.
	ErrUnsupportedSwitch = errors.New("unsupported switch")
	// ErrHTTPSDisabled is returned for --https when https is not enabled.
	ErrHTTPSDisabled = errors.New("https is disabled")
)

// unsupportedSwitches are configured through the dev server settings.
var unsupportedSwitches = []string{"--host", "--port"}

// HMR is the hot module replacement mode of the dev server.
type HMR string

// HMR modes.
const (
	HMROff  HMR = "false"
	HMROn   HMR = "true"
	HMROnly HMR = "only"
)

// ParseHMR parses a boolean or "only".
func ParseHMR(s string) (HMR, error) {
	v := strings.TrimSpace(s)
	if strings.EqualFold(v, string(HMROnly)) {
		return HMROnly, nil
	}
	if v == "" {
		return HMROff, nil
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return HMROff, fmt.Errorf("invalid hmr value %q: want true, false or only", s)
	}
	if on {
		return HMROn, nil
	}
	return HMROff, nil
}

// DevServer holds the dev server settings that shape the command line.
type DevServer struct {
	HTTPS  bool
	HMR    HMR
	Pretty bool
}

// DevServerRunner builds the command behind bin/shakapacker-dev-server.
type DevServerRunner struct {
	Options
	DevServer DevServer
}

// Build assembles the `webpack serve` command for argv.
func (r *DevServerRunner) Build(argv []string) (*Command, []Deprecation, error) {
	if err := r.checkSwitches(argv); err != nil {
		return nil, nil, err
	}

	ex := extractFlags(argv)

	cmd := append(r.launcher(), "serve", "--config", r.WebpackConfig)
	if r.DevServer.Pretty {
		cmd = append(cmd, "--progress", "--color")
	}
	if r.DevServer.HMR == HMROnly {
		cmd = append(cmd, "--hot", "only")
	}
	cmd = append(cmd, ex.args...)

	env := r.env(ex.nodeOptions)
	env[EnvWebpackServe] = "true"

	return &Command{
		Program: cmd[0],
		Args:    cmd[1:],
		Env:     env,
		Dir:     r.AppPath,
	}, ex.deprecations, nil
}

func (r *DevServerRunner) checkSwitches(argv []string) error {
	var found []string
	for _, sw := range unsupportedSwitches {
		if slices.Contains(argv, sw) {
			found = append(found, sw)
		}
	}
	if len(found) > 0 {
		return fmt.Errorf("%w: the following CLI switches are not supported by Shakapacker: %s. Please edit your command and try again",
			ErrUnsupportedSwitch, strings.Join(found, " "))
	}

	if slices.Contains(argv, "--https") && !r.DevServer.HTTPS {
		return fmt.Errorf("%w: set SHAKAPACKER_DEV_SERVER_HTTPS=true to use the --https command line flag", ErrHTTPSDisabled)
	}

	return nil
}
