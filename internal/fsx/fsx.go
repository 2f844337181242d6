// Package fsx wraps the filesystem primitives the conversion pipeline
// depends on.
package fsx

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Sync forces all buffered filesystem writes to durable storage.
func Sync() {
	unix.Sync()
}

// CheckDirWritable verifies that dir exists, is a directory, and grants
// read, write, and traverse permissions to the current user.
func CheckDirWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("insufficient permissions on %q: %w", dir, err)
	}
	return nil
}
