// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// StubBinaries writes exit-0 stub executables for the provided names and
// prepends them to PATH. Without names the default encoder binaries are
// stubbed.
func StubBinaries(t testing.TB, names ...string) string {
	t.Helper()
	if len(names) == 0 {
		names = []string{"cwebp", "avifenc"}
	}
	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	script := []byte("#!/bin/sh\nexit 0\n")
	for _, name := range names {
		target := filepath.Join(binDir, name)
		if err := os.WriteFile(target, script, 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return binDir
}

// StubFailingBinary writes a stub executable that always exits nonzero and
// prepends its directory to PATH.
func StubFailingBinary(t testing.TB, name string) {
	t.Helper()
	binDir := filepath.Join(t.TempDir(), "failbin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	script := []byte("#!/bin/sh\necho \"stub failure\" >&2\nexit 1\n")
	if err := os.WriteFile(filepath.Join(binDir, name), script, 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// IsolateHome points HOME (and unsets config env overrides) at a fresh temp
// directory so tests never touch the invoking user's state.
func IsolateHome(t testing.TB) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PIXPRESS_CWEBP", "")
	t.Setenv("PIXPRESS_AVIFENC", "")
	return home
}

// WriteImages creates stub image files with the given names inside dir.
func WriteImages(t testing.TB, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("stub-image"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
