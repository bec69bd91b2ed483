package portal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CacheEntry represents the disk data format.
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Key       string    `json:"key"`
	Body      string    `json:"body"`
}

// Cache stores raw portal responses on disk for a limited time.
type Cache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewCache creates a cache rooted at dir. A zero ttl returns nil, which disables caching.
func NewCache(dir string, ttl time.Duration) *Cache {
	if ttl <= 0 || dir == "" {
		return nil
	}
	return &Cache{dir: dir, ttl: ttl, now: time.Now}
}

func (c *Cache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:16])+".json")
}

// Get returns a cached body if a valid, unexpired entry exists for key.
func (c *Cache) Get(key string) (string, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}
	if entry.Key != key {
		return "", false
	}
	if c.now().Sub(entry.Timestamp) > c.ttl {
		return "", false
	}
	return entry.Body, true
}

// Put stores body under key.
func (c *Cache) Put(key, body string) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.Marshal(CacheEntry{
		Timestamp: c.now(),
		Key:       key,
		Body:      body,
	})
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Clear removes every cached entry. Other files in the directory are left alone.
func (c *Cache) Clear() error {
	entries, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing cache entries: %w", err)
	}
	for _, path := range entries {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clearing cache: %w", err)
		}
	}
	return nil
}
