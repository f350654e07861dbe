package storage

import (
	"context"
	"io"
	"sync"

	"github.com/SscSPs/precatorio_marketplace/internal/apperrors"
	portsrepo "github.com/SscSPs/precatorio_marketplace/internal/core/ports/repositories"
)

// MemoryStore keeps documents in process memory. It is used when no bucket is configured
// and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	maxBytes int64
	objects  map[string][]byte
}

var _ portsrepo.DocumentStore = (*MemoryStore)(nil)

func NewMemoryStore(maxBytes int64) *MemoryStore {
	return &MemoryStore{maxBytes: maxBytes, objects: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, key, fileName string, size int64, body io.Reader) (string, error) {
	if _, err := checkUpload(fileName, size, s.maxBytes); err != nil {
		return "", err
	}
	data, err := io.ReadAll(io.LimitReader(body, size))
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to read document", err)
	}

	fullKey := BasePath + key
	s.mu.Lock()
	s.objects[fullKey] = data
	s.mu.Unlock()
	return fullKey, nil
}

func (s *MemoryStore) Delete(_ context.Context, fileRef string) error {
	s.mu.Lock()
	delete(s.objects, fileRef)
	s.mu.Unlock()
	return nil
}

// Get returns a stored object.
func (s *MemoryStore) Get(fileRef string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[fileRef]
	return data, ok
}
