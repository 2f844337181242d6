package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pixpress/internal/encoder"
	"pixpress/internal/fsx"
	"pixpress/internal/naming"
)

// syncFn is the durability barrier issued after conversions. Tests replace
// it to assert how often it fires.
var syncFn = fsx.Sync

// Converter produces WebP and AVIF derivatives of source images.
type Converter struct {
	client encoder.Client
	logger *slog.Logger
}

// New constructs a Converter around an encoder client.
func New(client encoder.Client, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{client: client, logger: logger}
}

// File converts a single image, writing both derivatives into outDir and
// syncing the filesystem afterwards. The first encoder failure aborts the
// remaining steps and propagates to the caller.
func (c *Converter) File(ctx context.Context, path, outDir string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("image path required")
	}
	if outDir == "" {
		outDir = "."
	}

	webpOut := naming.Output(outDir, path, string(FormatWebP))
	if err := c.client.EncodeWebP(ctx, path, webpOut); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	c.logger.Info("converted", "source", path, "output", webpOut)

	avifOut := naming.Output(outDir, path, string(FormatAVIF))
	if err := c.client.EncodeAVIF(ctx, path, avifOut); err != nil {
		return fmt.Errorf("encode avif: %w", err)
	}
	c.logger.Info("converted", "source", path, "output", avifOut)

	syncFn()
	return nil
}
