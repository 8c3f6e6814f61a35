package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the storage interface shared by the feed and article fetchers.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a feed or article URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "newsbrief:v1:" + hex.EncodeToString(sum[:])
}

// Memory is an in-process TTL cache.
type Memory struct {
	store *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{store: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	if v, ok := m.store.Get(key); ok {
		return v.([]byte), true
	}
	return nil, false
}

func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	m.store.Set(key, value, ttl)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.store.Delete(key)
	return nil
}

func (m *Memory) Clear() error {
	m.store.Flush()
	return nil
}
