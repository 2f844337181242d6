// Package main hosts the convert-images batch tool.
//
// The command discovers PNG and JPG sources in a target directory (the
// working directory by default), drives the WebP and AVIF encoders over them,
// prints per-file status lines and a summary table, and records the run in
// the history ledger. A flock-guarded lock file keeps concurrent batch runs
// from racing on the same outputs.
package main
