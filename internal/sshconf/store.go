package sshconf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mkrenz/sshman/internal/errors"
)

// Load parses the config file at path. A missing file is an empty File,
// not an error, so the very first add works against a fresh home.
func Load(path string) (File, *errors.OpError) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, errors.Wrap(errors.CodeIO, "failed to read ssh config", map[string]any{"path": path}, err)
	}
	f, oe := Parse(strings.NewReader(string(b)))
	if oe != nil && oe.Details != nil {
		oe.Details["path"] = path
	}
	return f, oe
}

// Save writes the rendered File via a temp file in the target directory
// and renames it into place, so a crash mid-write never corrupts the
// existing config. The temp file is removed on any failure.
func Save(path string, f File) *errors.OpError {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(errors.CodeIO, "failed to create config directory", map[string]any{"dir": dir}, err)
	}

	tmp, err := os.CreateTemp(dir, ".sshman-*.tmp")
	if err != nil {
		return errors.Wrap(errors.CodeIO, "failed to create temp file", map[string]any{"dir": dir}, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(Render(f)); err != nil {
		return errors.Wrap(errors.CodeIO, "failed to write ssh config", map[string]any{"path": path}, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		return errors.Wrap(errors.CodeIO, "failed to set config permissions", map[string]any{"path": path}, err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(errors.CodeIO, "failed to sync ssh config", map[string]any{"path": path}, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.CodeIO, "failed to close temp file", map[string]any{"path": path}, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(errors.CodeIO, "failed to replace ssh config", map[string]any{"path": path}, err)
	}
	committed = true
	return nil
}
