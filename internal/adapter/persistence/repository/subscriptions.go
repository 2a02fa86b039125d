package repository

import (
	"encoding/json"
	"errors"
	"sync"

	"cotizador_taller/internal/domain/catalog"
	"cotizador_taller/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidPath         = errors.New("invalid catalog path")
	ErrInvalidDocument     = errors.New("document is not valid JSON")
	ErrUnknownSubscription = errors.New("unknown subscription")
)

// subscriptionRegistry fans a path's new value out to its listeners.
type subscriptionRegistry struct {
	mu   sync.RWMutex
	subs map[catalog.Path]map[string]func(json.RawMessage)
}

func newSubscriptionRegistry() *subscriptionRegistry {
	return &subscriptionRegistry{subs: map[catalog.Path]map[string]func(json.RawMessage){}}
}

func (r *subscriptionRegistry) add(path catalog.Path, onChange func(json.RawMessage)) interfaces.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub := interfaces.Subscription{ID: uuid.NewString(), Path: path}
	if r.subs[path] == nil {
		r.subs[path] = map[string]func(json.RawMessage){}
	}
	r.subs[path][sub.ID] = onChange
	return sub
}

func (r *subscriptionRegistry) remove(sub interfaces.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	listeners, ok := r.subs[sub.Path]
	if !ok {
		return ErrUnknownSubscription
	}
	if _, ok := listeners[sub.ID]; !ok {
		return ErrUnknownSubscription
	}
	delete(listeners, sub.ID)
	if len(listeners) == 0 {
		delete(r.subs, sub.Path)
	}
	return nil
}

func (r *subscriptionRegistry) watched(path catalog.Path) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[path]) > 0
}

// notify calls every listener of path outside the lock, so listeners may
// subscribe or unsubscribe from inside the callback.
func (r *subscriptionRegistry) notify(path catalog.Path, value json.RawMessage) {
	r.mu.RLock()
	fns := make([]func(json.RawMessage), 0, len(r.subs[path]))
	for _, fn := range r.subs[path] {
		fns = append(fns, fn)
	}
	r.mu.RUnlock()

	for _, fn := range fns {
		deliver(path, fn, cloneRaw(value))
	}
}

func deliver(path catalog.Path, fn func(json.RawMessage), value json.RawMessage) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("path", path.String()).Msg("[catalog][store] subscriber panicked")
		}
	}()
	fn(value)
}
