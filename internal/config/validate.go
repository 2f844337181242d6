package config

import (
	"errors"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateEncoders(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateEncoders() error {
	if strings.TrimSpace(c.WebP.Binary) == "" {
		return errors.New("webp.binary must be set")
	}
	if c.WebP.Quality < 0 || c.WebP.Quality > 100 {
		return errors.New("webp.quality must be between 0 and 100")
	}
	if strings.TrimSpace(c.AVIF.Binary) == "" {
		return errors.New("avif.binary must be set")
	}
	if c.AVIF.Speed < 0 || c.AVIF.Speed > 10 {
		return errors.New("avif.speed must be between 0 and 10")
	}
	return nil
}
