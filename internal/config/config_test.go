package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixpress/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("PIXPRESS_CWEBP", "")
	t.Setenv("PIXPRESS_AVIFENC", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "pixpress")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.WebP.Binary != "cwebp" {
		t.Fatalf("unexpected webp binary: %q", cfg.WebP.Binary)
	}
	if cfg.AVIF.Binary != "avifenc" {
		t.Fatalf("unexpected avif binary: %q", cfg.AVIF.Binary)
	}
	if cfg.AVIF.Speed != 0 {
		t.Fatalf("expected avif speed 0, got %d", cfg.AVIF.Speed)
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("expected ledger enabled by default")
	}
	if cfg.LedgerPath() != filepath.Join(wantState, "history.db") {
		t.Fatalf("unexpected ledger path: %q", cfg.LedgerPath())
	}
	if cfg.LockPath() != filepath.Join(wantState, "convert.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.StateDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
}

func TestLoadParsesExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[webp]",
		`binary = "cwebp-custom"`,
		"quality = 82",
		"[avif]",
		"speed = 6",
		"[batch]",
		"strict = true",
		"[logging]",
		`format = "JSON"`,
		`level = "Debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PIXPRESS_CWEBP", "")
	t.Setenv("PIXPRESS_AVIFENC", "")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v resolved=%q", exists, resolved)
	}
	if cfg.WebP.Binary != "cwebp-custom" || cfg.WebP.Quality != 82 {
		t.Fatalf("unexpected webp settings: %+v", cfg.WebP)
	}
	if cfg.AVIF.Speed != 6 {
		t.Fatalf("unexpected avif speed: %d", cfg.AVIF.Speed)
	}
	if !cfg.Batch.Strict {
		t.Fatal("expected strict batch mode")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %+v", cfg.Logging)
	}
}

func TestEnvironmentOverridesEncoderBinaries(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PIXPRESS_CWEBP", "/opt/webp/cwebp")
	t.Setenv("PIXPRESS_AVIFENC", "/opt/avif/avifenc")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.WebP.Binary != "/opt/webp/cwebp" {
		t.Fatalf("expected env webp binary, got %q", cfg.WebP.Binary)
	}
	if cfg.AVIF.Binary != "/opt/avif/avifenc" {
		t.Fatalf("expected env avif binary, got %q", cfg.AVIF.Binary)
	}
}

func TestValidateRejectsOutOfRangeValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"webp quality too high", func(c *config.Config) { c.WebP.Quality = 101 }},
		{"webp quality negative", func(c *config.Config) { c.WebP.Quality = -1 }},
		{"avif speed too high", func(c *config.Config) { c.AVIF.Speed = 11 }},
		{"avif speed negative", func(c *config.Config) { c.AVIF.Speed = -1 }},
		{"missing webp binary", func(c *config.Config) { c.WebP.Binary = " " }},
		{"missing state dir", func(c *config.Config) { c.Paths.StateDir = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Paths.StateDir = t.TempDir()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleWritesParsableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	t.Setenv("PIXPRESS_CWEBP", "")
	t.Setenv("PIXPRESS_AVIFENC", "")
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.WebP.Binary != "cwebp" || cfg.AVIF.Speed != 0 {
		t.Fatalf("sample defaults differ from Default(): %+v", cfg)
	}
}
