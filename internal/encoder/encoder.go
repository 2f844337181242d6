package encoder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

var commandContext = exec.CommandContext

// Client abstracts the two derivative encoders so the conversion pipeline
// can be driven by a recording fake in tests.
type Client interface {
	EncodeWebP(ctx context.Context, src, dst string) error
	EncodeAVIF(ctx context.Context, src, dst string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithWebPBinary overrides the default cwebp binary name.
func WithWebPBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.webpBinary = binary
		}
	}
}

// WithAVIFBinary overrides the default avifenc binary name.
func WithAVIFBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.avifBinary = binary
		}
	}
}

// WithWebPQuality sets an explicit cwebp quality; 0 keeps the encoder
// default.
func WithWebPQuality(quality int) Option {
	return func(c *CLI) {
		c.webpQuality = quality
	}
}

// WithAVIFSpeed sets the avifenc speed level.
func WithAVIFSpeed(speed int) Option {
	return func(c *CLI) {
		c.avifSpeed = speed
	}
}

// CLI invokes the encoder binaries as subprocesses. Encoder diagnostics pass
// through to the parent's streams untranslated.
type CLI struct {
	webpBinary  string
	avifBinary  string
	webpQuality int
	avifSpeed   int
}

// NewCLI constructs a CLI client using defaults: cwebp and avifenc on PATH,
// encoder-default WebP quality, AVIF speed 0 (slowest, highest quality).
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{webpBinary: "cwebp", avifBinary: "avifenc"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// EncodeWebP runs the WebP encoder with alpha preservation and multithreaded
// encoding enabled, writing dst via the encoder's explicit output flag.
func (c *CLI) EncodeWebP(ctx context.Context, src, dst string) error {
	if err := checkPaths(src, dst); err != nil {
		return err
	}
	args := []string{"-exact", "-mt"}
	if c.webpQuality > 0 {
		args = append(args, "-q", strconv.Itoa(c.webpQuality))
	}
	args = append(args, "-o", dst, src)
	return c.run(ctx, c.webpBinary, args)
}

// EncodeAVIF runs the AVIF encoder at the configured speed level. avifenc
// takes the output path positionally after the source.
func (c *CLI) EncodeAVIF(ctx context.Context, src, dst string) error {
	if err := checkPaths(src, dst); err != nil {
		return err
	}
	args := []string{"-s", strconv.Itoa(c.avifSpeed), src, dst}
	return c.run(ctx, c.avifBinary, args)
}

func (c *CLI) run(ctx context.Context, binary string, args []string) error {
	cmd := commandContext(ctx, binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", binary, err)
	}
	return nil
}

func checkPaths(src, dst string) error {
	if src == "" {
		return errors.New("source path required")
	}
	if dst == "" {
		return errors.New("output path required")
	}
	return nil
}

var _ Client = (*CLI)(nil)
