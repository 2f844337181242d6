// Package convert drives the derivative encoders over source images.
//
// Converter.File handles the single-image tool: both derivatives are encoded
// and a filesystem sync forces them to durable storage; the first encoder
// failure aborts the remaining steps. Converter.Batch handles the directory
// tool: PNG sources are processed before JPG sources, and within each group
// every file receives its WebP derivative before any file receives its AVIF
// one. Batch records a per-file outcome and keeps going past individual
// encoder failures; one sync covers the whole run.
//
// The target directory is always explicit here. Only the CLI layer defaults
// it to the invocation-time working directory.
package convert
