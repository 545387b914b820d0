package shaping

import (
	"fmt"
	"testing"
)

func TestShapeCacheEviction(t *testing.T) {
	c := newShapeCache(2)

	c.put("a", Result{Text: "A"})
	c.put("b", Result{Text: "B"})
	c.put("c", Result{Text: "C"}) // evicts "a"

	if got := c.len(); got != 2 {
		t.Fatalf("len() = %d, want 2", got)
	}
	if _, ok := c.get("a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	for _, key := range []string{"b", "c"} {
		if _, ok := c.get(key); !ok {
			t.Errorf("entry %q should still be cached", key)
		}
	}
}

func TestShapeCacheRecencyOrder(t *testing.T) {
	c := newShapeCache(2)

	c.put("a", Result{Text: "A"})
	c.put("b", Result{Text: "B"})

	// Touch "a" so "b" becomes the eviction candidate.
	if _, ok := c.get("a"); !ok {
		t.Fatal("entry a should be cached")
	}
	c.put("c", Result{Text: "C"})

	if _, ok := c.get("b"); ok {
		t.Error("least recently used entry b should have been evicted")
	}
	if _, ok := c.get("a"); !ok {
		t.Error("recently used entry a should survive")
	}
}

func TestShapeCacheUpdateExisting(t *testing.T) {
	c := newShapeCache(2)

	c.put("a", Result{Text: "old"})
	c.put("a", Result{Text: "new"})

	if got := c.len(); got != 1 {
		t.Fatalf("len() = %d, want 1", got)
	}
	res, ok := c.get("a")
	if !ok || res.Text != "new" {
		t.Errorf("get(a) = %q, %v; want %q, true", res.Text, ok, "new")
	}
}

func TestShapeCacheBoundedUnderLoad(t *testing.T) {
	c := newShapeCache(DefaultCacheSize)

	for i := 0; i < DefaultCacheSize*2; i++ {
		c.put(fmt.Sprintf("key-%d", i), Result{Text: "x"})
	}
	if got := c.len(); got != DefaultCacheSize {
		t.Fatalf("len() = %d, want %d", got, DefaultCacheSize)
	}
}
