package convert

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestAcquireLockIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "convert.lock")

	lock, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	defer func() { _ = lock.Unlock() }()

	if _, err := AcquireLock(path); !errors.Is(err, ErrBatchInProgress) {
		t.Fatalf("expected ErrBatchInProgress, got %v", err)
	}
}

func TestAcquireLockReleasable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convert.lock")

	lock, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("unlock failed: %v", err)
	}

	again, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("reacquire after unlock failed: %v", err)
	}
	_ = again.Unlock()
}
