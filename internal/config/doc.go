// Package config loads, normalizes, and validates pixpress configuration.
//
// Configuration is TOML, read from ~/.config/pixpress/config.toml, from a
// pixpress.toml in the working directory, or from an explicit --config path.
// A missing file is not an error: every setting has a default, so both tools
// run configuration-free out of the box. Encoder binaries can additionally be
// overridden through the PIXPRESS_CWEBP and PIXPRESS_AVIFENC environment
// variables, which is how tests point the tools at stub encoders.
package config
