package storage

import (
	"context"       // Context for cancellation
	"os"            // Filesystem access
	"path"          // URL path joining
	"path/filepath" // Filesystem path joining
	"strconv"       // Timestamp formatting
	"time"          // Upload timestamps
)

// LocalStore writes uploads to a directory on disk and returns URLs under a
// configured base path. Files are prefixed with the upload timestamp so
// repeated uploads of the same filename never collide.
type LocalStore struct {
	Dir     string // Directory uploads are written to
	BaseURL string // Public URL prefix for stored files
}

// NewLocalStore creates the upload directory if needed and returns a store
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err // Return error if the directory cannot be created
	}
	return &LocalStore{Dir: dir, BaseURL: baseURL}, nil
}

// Save writes the buffer to disk under a timestamp-prefixed name
func (s *LocalStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	// Honor cancellation before touching the disk
	if err := ctx.Err(); err != nil {
		return "", err
	}
	stored := strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + filepath.Base(name) // Timestamp prefix keeps names unique
	if err := os.WriteFile(filepath.Join(s.Dir, stored), data, 0o644); err != nil {
		return "", err // Return error if the write fails
	}
	return path.Join(s.BaseURL, stored), nil // Public URL for the stored file
}
