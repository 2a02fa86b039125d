package interfaces

import (
	"context"
	"encoding/json"

	"cotizador_taller/internal/domain/catalog"
)

// Subscription identifies a registered change listener.
type Subscription struct {
	ID   string
	Path catalog.Path
}

// ICatalogStore keeps each catalog collection as one JSON document.
//
// Contract:
//   - Save replaces the whole collection; concurrent writers are last-write-wins.
//   - Load returns fallback when the collection was never written.
//   - onChange receives the new document, or nil when the collection is gone.
type ICatalogStore interface {
	Save(ctx context.Context, path catalog.Path, value json.RawMessage) error
	Load(ctx context.Context, path catalog.Path, fallback json.RawMessage) (json.RawMessage, error)
	Subscribe(ctx context.Context, path catalog.Path, onChange func(json.RawMessage)) (Subscription, error)
	Unsubscribe(sub Subscription) error
}
