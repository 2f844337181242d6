package convert

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"pixpress/internal/fsx"
	"pixpress/internal/naming"
)

// passFormats is the per-group pass order: every file in a group gets its
// WebP derivative before any file in that group gets its AVIF one.
var passFormats = []Format{FormatWebP, FormatAVIF}

// Batch converts every eligible image in dir, writing derivatives back into
// the same directory. Individual encoder failures are recorded as outcomes
// and do not stop the run. An empty directory is a successful no-op. One
// filesystem sync covers the complete batch.
func (c *Converter) Batch(ctx context.Context, dir string) (*Result, error) {
	if err := fsx.CheckDirWritable(dir); err != nil {
		return nil, err
	}

	groups, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Directory: dir,
		StartedAt: time.Now().UTC(),
	}

	total := 0
	for _, files := range groups {
		total += len(files)
	}
	c.logger.Info("batch started", "run_id", result.RunID, "directory", dir, "files", total)

	for _, ext := range extensionGroups {
		files := groups[ext]
		if len(files) == 0 {
			continue
		}
		for _, format := range passFormats {
			for _, src := range files {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				result.Outcomes = append(result.Outcomes, c.encodeOne(ctx, src, dir, format))
			}
		}
	}

	syncFn()
	result.FinishedAt = time.Now().UTC()

	c.logger.Info("batch finished",
		"run_id", result.RunID,
		"converted", result.Succeeded(),
		"failed", result.Failed(),
		"elapsed", result.FinishedAt.Sub(result.StartedAt))
	return result, nil
}

func (c *Converter) encodeOne(ctx context.Context, src, outDir string, format Format) Outcome {
	outcome := Outcome{
		Source: src,
		Format: format,
		Output: naming.Output(outDir, src, string(format)),
	}

	started := time.Now()
	switch format {
	case FormatWebP:
		outcome.Err = c.client.EncodeWebP(ctx, src, outcome.Output)
	default:
		outcome.Err = c.client.EncodeAVIF(ctx, src, outcome.Output)
	}
	outcome.Duration = time.Since(started)

	if outcome.Err != nil {
		c.logger.Error("conversion failed",
			"source", filepath.Base(src),
			"format", string(format),
			"error", outcome.Err)
	} else {
		c.logger.Debug("converted",
			"source", filepath.Base(src),
			"output", filepath.Base(outcome.Output),
			"elapsed", outcome.Duration)
	}
	return outcome
}
