// Package config resolves which SSH config file the tool operates on.
package config

import (
	"os"
	"path/filepath"

	"github.com/mkrenz/sshman/internal/errors"
)

// EnvPath is the environment override for the config file location.
const EnvPath = "SSHMAN_CONFIG"

// Options carry the inputs to Resolve. Env and home are injected by the
// caller so tests never touch the real environment or home directory.
type Options struct {
	// CLIPath: --config flag value; used as-is when non-empty.
	CLIPath string

	// EnvPath: value of SSHMAN_CONFIG.
	EnvPath string

	// HomeDir for the default path; empty means auto-detect.
	HomeDir string
}

// Resolve picks the config file path: CLI flag > SSHMAN_CONFIG > ~/.ssh/config.
func Resolve(opts Options) (string, *errors.OpError) {
	if opts.CLIPath != "" {
		return opts.CLIPath, nil
	}
	if opts.EnvPath != "" {
		return opts.EnvPath, nil
	}
	home := opts.HomeDir
	if home == "" {
		hd, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(errors.CodeIO, "failed to determine home directory", nil, err)
		}
		home = hd
	}
	return filepath.Join(home, ".ssh", "config"), nil
}
