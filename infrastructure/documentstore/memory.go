package documentstore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore guarda os documentos em memória, usado em desenvolvimento e testes
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[string]Document
	clock Clock
}

func NewMemoryStore(clock Clock) *MemoryStore {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryStore{
		docs:  make(map[string]Document),
		clock: clock,
	}
}

func (s *MemoryStore) Get(_ context.Context, collection, key string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[memoryKey(collection, key)]
	if !ok {
		return nil, ErrNotFound
	}

	payload := make([]byte, len(doc.Payload))
	copy(payload, doc.Payload)
	return &Document{Payload: payload, LastSync: doc.LastSync}, nil
}

func (s *MemoryStore) Put(_ context.Context, collection, key string, payload []byte) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[memoryKey(collection, key)] = Document{Payload: stored, LastSync: s.clock()}
	return nil
}

func (s *MemoryStore) Age(ctx context.Context, collection, key string) (time.Duration, error) {
	doc, err := s.Get(ctx, collection, key)
	if err != nil {
		return 0, err
	}
	return s.clock().Sub(doc.LastSync), nil
}

func memoryKey(collection, key string) string {
	return collection + "/" + key
}
