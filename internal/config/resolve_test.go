package config

import (
	"path/filepath"
	"testing"
)

func TestResolve_CLIWins(t *testing.T) {
	path, oe := Resolve(Options{CLIPath: "/tmp/cli", EnvPath: "/tmp/env", HomeDir: "/home/u"})
	if oe != nil {
		t.Fatalf("unexpected error: %v", oe)
	}
	if path != "/tmp/cli" {
		t.Fatalf("expected CLI path, got %q", path)
	}
}

func TestResolve_EnvBeatsDefault(t *testing.T) {
	path, oe := Resolve(Options{EnvPath: "/tmp/env", HomeDir: "/home/u"})
	if oe != nil {
		t.Fatalf("unexpected error: %v", oe)
	}
	if path != "/tmp/env" {
		t.Fatalf("expected env path, got %q", path)
	}
}

func TestResolve_DefaultUnderHome(t *testing.T) {
	home := t.TempDir()
	path, oe := Resolve(Options{HomeDir: home})
	if oe != nil {
		t.Fatalf("unexpected error: %v", oe)
	}
	if path != filepath.Join(home, ".ssh", "config") {
		t.Fatalf("expected default path, got %q", path)
	}
}
