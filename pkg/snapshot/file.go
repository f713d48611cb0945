package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abstractlayout/laf/pkg/laf"
)

// FileStore is a file-based Store for CLI usage: each run/phase snapshot
// is one phase-<n>.json file in a per-run subdirectory of dir, the
// subdirectory named by a hash of the run id to keep it filesystem-safe.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store rooted at dir, creating it if
// necessary.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Put stores data for runID/phase, expiring it after ttl if ttl > 0.
func (s *FileStore) Put(ctx context.Context, runID string, phase laf.PhaseID, data []byte, ttl time.Duration) error {
	entry := fileEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := s.path(runID, phase)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0o644)
}

// Get retrieves the snapshot for runID/phase, returning (nil, false, nil)
// on a miss or expiry.
func (s *FileStore) Get(ctx context.Context, runID string, phase laf.PhaseID) ([]byte, bool, error) {
	path := s.path(runID, phase)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Close does nothing for FileStore.
func (s *FileStore) Close() error { return nil }

// path hashes runID rather than using it as a path segment directly:
// runID reaches here both from the CLI's own uuid.NewString() and, via
// Server, straight from an HTTP path parameter, so it must never be
// trusted as a filesystem-safe, traversal-free string.
func (s *FileStore) path(runID string, phase laf.PhaseID) string {
	sum := sha256.Sum256([]byte(runID))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:]), fmt.Sprintf("phase-%d.json", int(phase)))
}

var _ Store = (*FileStore)(nil)
