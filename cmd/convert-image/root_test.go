package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixpress/internal/testsupport"
)

func TestMissingArgumentFailsBeforeAnyEncoderRuns(t *testing.T) {
	testsupport.IsolateHome(t)
	// No encoder stubs on PATH: an attempted invocation would surface as a
	// lookup failure rather than an argument error.
	cmd := newRootCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected missing-argument error")
	}
	if !strings.Contains(err.Error(), "accepts 1 arg") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConvertSingleImage(t *testing.T) {
	testsupport.IsolateHome(t)
	testsupport.StubBinaries(t)

	dir := t.TempDir()
	testsupport.WriteImages(t, dir, "photo.png")

	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"--output-dir", dir,
		filepath.Join(dir, "photo.png"),
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
}

func TestEncoderFailurePropagatesAsExitError(t *testing.T) {
	testsupport.IsolateHome(t)
	testsupport.StubBinaries(t, "avifenc")
	testsupport.StubFailingBinary(t, "cwebp")

	dir := t.TempDir()
	testsupport.WriteImages(t, dir, "photo.png")

	cmd := newRootCommand()
	cmd.SetArgs([]string{
		"--output-dir", dir,
		filepath.Join(dir, "photo.png"),
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected encoder failure to propagate")
	}
	if !strings.Contains(err.Error(), "encode webp") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTooManyArgumentsRejected(t *testing.T) {
	testsupport.IsolateHome(t)
	cmd := newRootCommand()
	cmd.SetArgs([]string{"a.png", "b.png"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for extra arguments")
	}
	if _, err := os.Stat("a.webp"); err == nil {
		t.Fatal("no output should be produced on argument errors")
	}
}
