package storage

import (
	"context"
	"sync"
)

// MemoryBlobStore is an in-process BlobStore. It backs tests and the degraded
// mode where Redis is unreachable at startup (state then lives only as long
// as the process).
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailWrites makes every Write fail; tests use it to exercise the
	// persistence degraded-mode policy.
	FailWrites bool
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryBlobStore) Write(ctx context.Context, key string, data []byte) error {
	if s.FailWrites {
		return errWriteFailed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key] = stored
	return nil
}

func (s *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

var errWriteFailed = writeError{}

type writeError struct{}

func (writeError) Error() string { return "memory blob store: writes disabled" }
