package rsync

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another process is already syncing to the same
// destination.
var ErrLocked = errors.New("destination is locked by another sync")

type destinationLock struct {
	fl   *flock.Flock
	path string
}

// LockPath returns the lock file used for destination inside dir.
func LockPath(dir, destination string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(destination)))
	return filepath.Join(dir, fmt.Sprintf("rsync-tui_%s.lock", hex.EncodeToString(sum[:8])))
}

// acquireLock takes a non-blocking advisory lock for destination. A nil lock
// and nil error are returned when locking is disabled or destination is empty.
func acquireLock(dir, destination string) (*destinationLock, error) {
	if dir == "" || strings.TrimSpace(destination) == "" {
		return nil, nil
	}
	path := LockPath(dir, destination)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, destination)
	}
	return &destinationLock{fl: fl, path: path}, nil
}

func (l *destinationLock) release() {
	if l == nil {
		return
	}
	if err := l.fl.Unlock(); err != nil {
		return
	}
	_ = os.Remove(l.path)
}
