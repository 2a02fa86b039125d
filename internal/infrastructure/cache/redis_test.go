package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("NewRedis error: %v", err)
	}
	defer rdb.Close()

	if _, err := NewRedis(context.Background(), "not a url"); err == nil {
		t.Fatal("expected parse error")
	}
}
