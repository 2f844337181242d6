package encoder

import (
	"context"
	"os/exec"
	"reflect"
	"testing"
)

type capturedCommand struct {
	binary string
	args   []string
}

// stubCommands replaces command construction with /usr/bin/true (or "true"
// from PATH) while recording the requested binary and arguments.
func stubCommands(t *testing.T) *[]capturedCommand {
	t.Helper()
	var captured []capturedCommand
	original := commandContext
	commandContext = func(ctx context.Context, binary string, args ...string) *exec.Cmd {
		captured = append(captured, capturedCommand{binary: binary, args: args})
		return exec.CommandContext(ctx, "true")
	}
	t.Cleanup(func() { commandContext = original })
	return &captured
}

func TestEncodeWebPArguments(t *testing.T) {
	captured := stubCommands(t)
	cli := NewCLI()

	if err := cli.EncodeWebP(context.Background(), "photo.png", "photo.webp"); err != nil {
		t.Fatalf("EncodeWebP failed: %v", err)
	}

	got := (*captured)[0]
	if got.binary != "cwebp" {
		t.Fatalf("unexpected binary: %q", got.binary)
	}
	want := []string{"-exact", "-mt", "-o", "photo.webp", "photo.png"}
	if !reflect.DeepEqual(got.args, want) {
		t.Fatalf("unexpected args: got %v want %v", got.args, want)
	}
}

func TestEncodeWebPQualityFlag(t *testing.T) {
	captured := stubCommands(t)
	cli := NewCLI(WithWebPQuality(82))

	if err := cli.EncodeWebP(context.Background(), "in.png", "out.webp"); err != nil {
		t.Fatalf("EncodeWebP failed: %v", err)
	}

	want := []string{"-exact", "-mt", "-q", "82", "-o", "out.webp", "in.png"}
	if !reflect.DeepEqual((*captured)[0].args, want) {
		t.Fatalf("unexpected args: %v", (*captured)[0].args)
	}
}

func TestEncodeAVIFArguments(t *testing.T) {
	captured := stubCommands(t)
	cli := NewCLI(WithAVIFBinary("avifenc-local"), WithAVIFSpeed(0))

	if err := cli.EncodeAVIF(context.Background(), "photo.png", "photo.avif"); err != nil {
		t.Fatalf("EncodeAVIF failed: %v", err)
	}

	got := (*captured)[0]
	if got.binary != "avifenc-local" {
		t.Fatalf("unexpected binary: %q", got.binary)
	}
	want := []string{"-s", "0", "photo.png", "photo.avif"}
	if !reflect.DeepEqual(got.args, want) {
		t.Fatalf("unexpected args: got %v want %v", got.args, want)
	}
}

func TestEncodeRejectsEmptyPaths(t *testing.T) {
	captured := stubCommands(t)
	cli := NewCLI()

	if err := cli.EncodeWebP(context.Background(), "", "out.webp"); err == nil {
		t.Fatal("expected error for empty source")
	}
	if err := cli.EncodeAVIF(context.Background(), "in.png", ""); err == nil {
		t.Fatal("expected error for empty output")
	}
	if len(*captured) != 0 {
		t.Fatalf("no commands should run on invalid input, got %d", len(*captured))
	}
}

func TestEncodeFailurePropagates(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, binary string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	}
	t.Cleanup(func() { commandContext = original })

	cli := NewCLI()
	if err := cli.EncodeWebP(context.Background(), "in.png", "out.webp"); err == nil {
		t.Fatal("expected encoder failure to propagate")
	}
}
