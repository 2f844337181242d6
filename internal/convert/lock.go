package convert

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrBatchInProgress signals that another batch run holds the lock.
var ErrBatchInProgress = errors.New("another batch run is in progress")

// AcquireLock takes the cross-process batch lock without blocking. Callers
// must Unlock the returned lock once the run completes.
func AcquireLock(path string) (*flock.Flock, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create lock directory: %w", err)
		}
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire batch lock: %w", err)
	}
	if !ok {
		return nil, ErrBatchInProgress
	}
	return lock, nil
}
