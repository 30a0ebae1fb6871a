package galaxy

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"starmap-server/internal/system"
)

// A disabled cache (nil client) must behave like a permanent miss.
func TestSystemCacheNilClient(t *testing.T) {
	cache := NewSystemCache(nil, time.Minute, slog.Default())
	ctx := context.Background()

	if got := cache.Get(ctx, 42, 0); got != nil {
		t.Fatalf("expected nil from disabled cache, got %+v", got)
	}

	gen := system.NewGenerator(slog.Default())
	sys := gen.Generate(42, 0)
	cache.Put(ctx, 42, 0, sys)

	if got := cache.Get(ctx, 42, 0); got != nil {
		t.Fatalf("disabled cache must not store, got %+v", got)
	}
}

func TestSystemKeyIncludesSeedAndIndex(t *testing.T) {
	a := systemKey(1, 2)
	b := systemKey(1, 3)
	c := systemKey(2, 2)
	if a == b || a == c {
		t.Errorf("cache keys collide: %q %q %q", a, b, c)
	}
}
