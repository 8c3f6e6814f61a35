package cache

import (
	"time"

	"github.com/pkozlov/newsbrief/internal/model"
)

// Layered checks memory first, then disk, promoting disk hits to memory.
type Layered struct {
	memory Cache
	disk   Cache
}

// NewLayered builds the standard memory+disk cache from configuration.
// Returns nil when caching is disabled; callers treat a nil cache as a miss.
func NewLayered(cfg model.CacheConfig) *Layered {
	if !cfg.Enabled {
		return nil
	}
	return &Layered{
		memory: NewMemory(cfg.MemoryTTL, 10*time.Minute),
		disk:   NewDisk(cfg.Dir, cfg.DiskTTL),
	}
}

func (l *Layered) Get(key string) ([]byte, bool) {
	if l == nil {
		return nil, false
	}
	if v, ok := l.memory.Get(key); ok {
		return v, true
	}
	if v, ok := l.disk.Get(key); ok {
		_ = l.memory.Set(key, v, 0)
		return v, true
	}
	return nil, false
}

func (l *Layered) Set(key string, value []byte, ttl time.Duration) error {
	if l == nil {
		return nil
	}
	if err := l.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return l.disk.Set(key, value, ttl)
}

func (l *Layered) Delete(key string) error {
	if l == nil {
		return nil
	}
	_ = l.memory.Delete(key)
	return l.disk.Delete(key)
}

func (l *Layered) Clear() error {
	if l == nil {
		return nil
	}
	_ = l.memory.Clear()
	return l.disk.Clear()
}
