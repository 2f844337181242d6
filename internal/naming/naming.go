// Package naming derives output file names for image derivatives.
//
// The base name of a source image is the final path segment truncated at the
// first literal dot. Names with more than one dot therefore lose everything
// after the first one ("my.photo.png" becomes "my"); this matches the shell
// scripts this tool replaced and is kept rather than silently corrected.
package naming

import (
	"path/filepath"
	"strings"
)

// Base returns the final path segment of path up to (but not including) the
// first dot. When the segment contains no dot the whole segment is returned.
func Base(path string) string {
	segment := filepath.Base(path)
	if idx := strings.IndexByte(segment, '.'); idx >= 0 {
		return segment[:idx]
	}
	return segment
}

// Output builds the derivative path for source inside dir. ext is the
// derivative extension without the dot ("webp", "avif").
func Output(dir, source, ext string) string {
	return filepath.Join(dir, Base(source)+"."+ext)
}
