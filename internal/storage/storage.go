package storage

import "context"

// Store persists an uploaded byte buffer and returns a publicly reachable
// URL for it.
type Store interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}
