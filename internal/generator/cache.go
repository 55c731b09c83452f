package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"time"
)

const (
	cacheMaxEntries = 50
	cacheTTL        = 5 * time.Minute
	cacheKeyPrefix  = 1000
)

// resultCache memoizes successful generation results. Entries expire after
// five minutes and the cache holds at most 50 entries, evicting the oldest
// insertion. Bumping the version invalidates everything at once.
type resultCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	order   []string
	version string
}

type cacheEntry struct {
	result  Result
	stored  time.Time
	version string
}

func newResultCache() *resultCache {
	return &resultCache{
		entries: make(map[string]cacheEntry),
		version: "2.0",
	}
}

// key derives the cache key from every input that affects the result. Only
// the first 1000 characters of the prompt participate.
func (c *resultCache) key(prompt string, opts Options, strict bool) string {
	if len(prompt) > cacheKeyPrefix {
		prompt = prompt[:cacheKeyPrefix]
	}
	c.mu.Lock()
	version := c.version
	c.mu.Unlock()

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%g|%t|%s",
		prompt, opts.Model, opts.Style, opts.Temperature, strict, version)))
	return hex.EncodeToString(sum[:])
}

func (c *resultCache) get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Result{}, false
	}
	if entry.version != c.version || time.Since(entry.stored) > cacheTTL {
		delete(c.entries, key)
		return Result{}, false
	}
	return entry.result, true
}

func (c *resultCache) put(key string, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= cacheMaxEntries {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{result: result, stored: time.Now(), version: c.version}
}

// clear drops every entry and bumps the version so stale keys computed
// concurrently can never be served again.
func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
	c.order = nil
	if v, err := strconv.ParseFloat(c.version, 64); err == nil {
		c.version = fmt.Sprintf("%.1f", v+0.1)
	}
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
