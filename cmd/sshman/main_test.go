package main

import (
	"os"
	"path/filepath"
	"testing"
)

func runWithArgs(t *testing.T, args ...string) int {
	t.Helper()
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = append([]string{"sshman"}, args...)
	return run()
}

func TestRun_VersionSuccess(t *testing.T) {
	if code := runWithArgs(t, "version", "--format", "json"); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
}

func TestRun_SpecSuccess(t *testing.T) {
	if code := runWithArgs(t, "spec", "--format", "json"); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	if code := runWithArgs(t, "list", "--format", "bogus"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if code := runWithArgs(t, "frobnicate"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestRun_ShowNotFoundExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if code := runWithArgs(t, "show", "missing", "--config", path, "--format", "json"); code != 4 {
		t.Fatalf("expected exit 4, got %d", code)
	}
}

func TestRun_AddDuplicateExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if code := runWithArgs(t, "add", "web", "web.example.com", "root", "22", "--config", path, "--format", "json"); code != 0 {
		t.Fatalf("first add: expected exit 0, got %d", code)
	}
	if code := runWithArgs(t, "add", "web", "other.example.com", "root", "22", "--config", path, "--format", "json"); code != 5 {
		t.Fatalf("duplicate add: expected exit 5, got %d", code)
	}
}

func TestRun_ParseErrorExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte("Match all\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if code := runWithArgs(t, "list", "--config", path, "--format", "json"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}
