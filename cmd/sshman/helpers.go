package main

import (
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/mkrenz/sshman/internal/config"
	"github.com/mkrenz/sshman/internal/errors"
	"github.com/mkrenz/sshman/internal/log"
	"github.com/mkrenz/sshman/internal/output"
	"github.com/mkrenz/sshman/internal/sshconf"
)

// parseOutputFormat parses and validates the output format string.
func parseOutputFormat(s string) (output.Format, *errors.OpError) {
	f := output.Format(s)
	if !output.IsValid(f) {
		return "", errors.New(errors.CodeUsage, "invalid output format", map[string]any{"format": s})
	}
	return resolveAuto(f), nil
}

// resolveFormatForError resolves the format for error output.
func resolveFormatForError(s string) output.Format {
	f := output.Format(s)
	if !output.IsValid(f) {
		f = output.FormatAuto
	}
	return resolveAuto(f)
}

// resolveAuto resolves "auto" to table on a TTY, JSON otherwise.
func resolveAuto(f output.Format) output.Format {
	if f != output.FormatAuto {
		return f
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return output.FormatTable
	}
	return output.FormatJSON
}

// normalizeErr normalizes any error to OpError. Errors that escape the
// command handlers are flag and argument misuse reported by cobra.
func normalizeErr(err error) *errors.OpError {
	if oe, ok := errors.As(err); ok {
		return oe
	}
	return errors.Wrap(errors.CodeUsage, err.Error(), nil, err)
}

func newLogger(flags *RootFlags) *slog.Logger {
	return log.New(os.Stderr, flags.Debug)
}

// loadFile resolves the config path and parses it.
func loadFile(flags *RootFlags, logger *slog.Logger) (sshconf.File, string, *errors.OpError) {
	path, oe := config.Resolve(config.Options{
		CLIPath: flags.ConfigPath,
		EnvPath: os.Getenv(config.EnvPath),
	})
	if oe != nil {
		return sshconf.File{}, "", oe
	}
	f, oe := sshconf.Load(path)
	if oe != nil {
		return sshconf.File{}, path, oe
	}
	logger.Debug("loaded ssh config", "path", path, "entries", len(f.Entries))
	return f, path, nil
}

func saveFile(path string, f sshconf.File, logger *slog.Logger) *errors.OpError {
	if oe := sshconf.Save(path, f); oe != nil {
		return oe
	}
	logger.Debug("saved ssh config", "path", path, "entries", len(f.Entries))
	return nil
}
