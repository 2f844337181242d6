// Package main hosts the convert-image single-file tool.
//
// The command takes exactly one image path, produces its WebP and AVIF
// derivatives in the output directory (the working directory by default),
// and exits nonzero when the argument is missing or either encoder fails.
package main
