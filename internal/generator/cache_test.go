package generator

import (
	"fmt"
	"testing"
)

func TestResultCache_RoundTrip(t *testing.T) {
	c := newResultCache()
	opts := Options{Model: "gemini-3-flash-preview", Style: "detailed", Temperature: 0.4}

	key := c.key("describe a pipeline", opts, true)
	if _, ok := c.get(key); ok {
		t.Fatal("hit on empty cache")
	}

	c.put(key, Result{Success: true, Prompt: "cached"})
	got, ok := c.get(key)
	if !ok || got.Prompt != "cached" {
		t.Errorf("get = %+v, %v", got, ok)
	}
}

func TestResultCache_KeyDiscriminates(t *testing.T) {
	c := newResultCache()
	base := Options{Model: "gemini-3-flash-preview", Style: "detailed", Temperature: 0.4}

	k1 := c.key("same prompt", base, true)

	other := base
	other.Model = "gpt-4o-mini"
	if c.key("same prompt", other, true) == k1 {
		t.Error("key ignores model")
	}
	if c.key("same prompt", base, false) == k1 {
		t.Error("key ignores strict mode")
	}
	if c.key("different prompt", base, true) == k1 {
		t.Error("key ignores prompt")
	}
}

func TestResultCache_Eviction(t *testing.T) {
	c := newResultCache()
	opts := Options{Model: "m", Style: "detailed", Temperature: 0.4}

	first := c.key("prompt-0", opts, true)
	for i := 0; i < cacheMaxEntries+1; i++ {
		k := c.key(fmt.Sprintf("prompt-%d", i), opts, true)
		c.put(k, Result{Prompt: fmt.Sprintf("r%d", i)})
	}

	if c.len() != cacheMaxEntries {
		t.Errorf("cache size = %d, want %d", c.len(), cacheMaxEntries)
	}
	if _, ok := c.get(first); ok {
		t.Error("oldest entry survived eviction")
	}
}

func TestResultCache_ClearInvalidates(t *testing.T) {
	c := newResultCache()
	opts := Options{Model: "m", Style: "detailed", Temperature: 0.4}

	key := c.key("prompt", opts, true)
	c.put(key, Result{Prompt: "stale"})
	c.clear()

	if _, ok := c.get(key); ok {
		t.Error("stale entry served after clear")
	}
	if c.key("prompt", opts, true) == key {
		t.Error("key unchanged after version bump")
	}
}
