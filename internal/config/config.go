package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	StateDir string `toml:"state_dir"`
	LogDir   string `toml:"log_dir"`
}

// WebP contains settings for the WebP encoder invocation.
type WebP struct {
	Binary  string `toml:"binary"`
	Quality int    `toml:"quality"` // 0 leaves the encoder default in place
}

// AVIF contains settings for the AVIF encoder invocation.
type AVIF struct {
	Binary string `toml:"binary"`
	Speed  int    `toml:"speed"`
}

// Batch contains settings for the batch conversion run.
type Batch struct {
	Strict bool `toml:"strict"`
}

// Ledger contains settings for the conversion history database.
type Ledger struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for pixpress.
//
// Sections by subsystem:
//   - Paths: state directory (ledger, batch lock) and optional log mirror
//   - WebP / AVIF: encoder binary names and quality knobs
//   - Batch: batch run behavior
//   - Ledger: SQLite conversion history
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	WebP    WebP    `toml:"webp"`
	AVIF    AVIF    `toml:"avif"`
	Batch   Batch   `toml:"batch"`
	Ledger  Ledger  `toml:"ledger"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/pixpress/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("pixpress.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the tools write into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.StateDir}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LockPath returns the batch lock file location inside the state directory.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "convert.lock")
}

// LedgerPath returns the conversion history database location.
func (c *Config) LedgerPath() string {
	if strings.TrimSpace(c.Ledger.Path) != "" {
		return c.Ledger.Path
	}
	return filepath.Join(c.Paths.StateDir, "history.db")
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
	}

	c.WebP.Binary = strings.TrimSpace(c.WebP.Binary)
	if c.WebP.Binary == "" {
		c.WebP.Binary = defaultWebPBinary
	}
	if value, ok := os.LookupEnv("PIXPRESS_CWEBP"); ok && strings.TrimSpace(value) != "" {
		c.WebP.Binary = strings.TrimSpace(value)
	}

	c.AVIF.Binary = strings.TrimSpace(c.AVIF.Binary)
	if c.AVIF.Binary == "" {
		c.AVIF.Binary = defaultAVIFBinary
	}
	if value, ok := os.LookupEnv("PIXPRESS_AVIFENC"); ok && strings.TrimSpace(value) != "" {
		c.AVIF.Binary = strings.TrimSpace(value)
	}

	if strings.TrimSpace(c.Ledger.Path) != "" {
		if c.Ledger.Path, err = expandPath(c.Ledger.Path); err != nil {
			return fmt.Errorf("ledger.path: %w", err)
		}
	}

	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
