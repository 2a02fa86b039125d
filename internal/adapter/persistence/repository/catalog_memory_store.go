package repository

import (
	"context"
	"encoding/json"
	"sync"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/usecase/interfaces"
)

// CatalogMemoryStore keeps catalog documents in process memory. Writes are
// whole-document replaces and the last writer wins.
type CatalogMemoryStore struct {
	mu   sync.RWMutex
	docs map[catalog.Path]json.RawMessage
	subs *subscriptionRegistry
}

var _ interfaces.ICatalogStore = (*CatalogMemoryStore)(nil)

func NewCatalogMemoryStore() *CatalogMemoryStore {
	return &CatalogMemoryStore{
		docs: map[catalog.Path]json.RawMessage{},
		subs: newSubscriptionRegistry(),
	}
}

func (s *CatalogMemoryStore) Save(ctx context.Context, path catalog.Path, value json.RawMessage) error {
	if !path.Valid() {
		return ErrInvalidPath
	}
	doc, err := compactDocument(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs[path] = doc
	s.mu.Unlock()

	s.subs.notify(path, doc)
	return nil
}

func (s *CatalogMemoryStore) Load(ctx context.Context, path catalog.Path, fallback json.RawMessage) (json.RawMessage, error) {
	if !path.Valid() {
		return cloneRaw(fallback), ErrInvalidPath
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[path]
	if !ok {
		return cloneRaw(fallback), nil
	}
	return cloneRaw(doc), nil
}

// Subscribe delivers the current value right away, then every saved value.
// A path with nothing stored yields a JSON null.
func (s *CatalogMemoryStore) Subscribe(ctx context.Context, path catalog.Path, onChange func(json.RawMessage)) (interfaces.Subscription, error) {
	if !path.Valid() {
		return interfaces.Subscription{}, ErrInvalidPath
	}
	sub := s.subs.add(path, onChange)
	current, _ := s.Load(ctx, path, nullDocument)
	deliver(path, onChange, current)
	return sub, nil
}

func (s *CatalogMemoryStore) Unsubscribe(sub interfaces.Subscription) error {
	return s.subs.remove(sub)
}
