package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cotizador_taller/internal/domain/catalog"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisChangeFeed_RefreshesStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := NewRedisChangeFeed(rdb, "")
	store := NewCatalogDynamoStore(newFakeDynamo(), "catalog", feed)

	changes := make(chan string, 4)
	if _, err := store.Subscribe(ctx, catalog.PathCrossSellItems, func(v json.RawMessage) { changes <- string(v) }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := <-changes; got != "null" {
		t.Fatalf("expected initial null, got %s", got)
	}

	if err := feed.Listen(ctx, func(p catalog.Path) { store.Refresh(ctx, p) }); err != nil {
		t.Fatalf("Listen error: %v", err)
	}
	if err := store.Save(ctx, catalog.PathCrossSellItems, json.RawMessage(`[{"id":"cs1"}]`)); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	select {
	case got := <-changes:
		if got != `[{"id":"cs1"}]` {
			t.Fatalf("unexpected value %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change feed")
	}
}

func TestRedisChangeFeed_IgnoresUnknownPaths(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := NewRedisChangeFeed(rdb, "test:feed")
	got := make(chan catalog.Path, 2)
	if err := feed.Listen(ctx, func(p catalog.Path) { got <- p }); err != nil {
		t.Fatalf("Listen error: %v", err)
	}

	rdb.Publish(ctx, "test:feed", "bogus")
	rdb.Publish(ctx, "test:feed", "parts")

	select {
	case p := <-got:
		if p != catalog.PathParts {
			t.Fatalf("expected parts, got %s", p)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change feed")
	}
}
