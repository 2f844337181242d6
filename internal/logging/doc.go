// Package logging builds the slog loggers used by both CLI tools.
//
// Two formats are supported: a compact console format for interactive use and
// JSON for machine consumption. Output goes to stderr so encoder diagnostics
// and table output on stdout stay separable; configuring paths.log_dir mirrors
// every line to a pixpress.log file.
package logging
