// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
)

// DefaultCleanupInterval is how often TTL removes expired entries.
const DefaultCleanupInterval = 5 * time.Minute

type entry[V any] struct {
	data      V
	expiresAt time.Time
}

// TTL provides a thread-safe in-memory cache with TTL support.
type TTL[V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration

	statsMu sync.RWMutex
	stats   Stats

	stop      chan struct{}
	closeOnce sync.Once
}

// NewTTL creates an in-memory cache whose entries expire after ttl. A
// background goroutine removes expired entries every five minutes until
// Close is called. name labels the cache in metrics.
func NewTTL[V any](name string, ttl time.Duration) *TTL[V] {
	return newTTL[V](name, ttl, DefaultCleanupInterval)
}

func newTTL[V any](name string, ttl, cleanupInterval time.Duration) *TTL[V] {
	c := &TTL[V]{
		name:    name,
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		stats:   Stats{LastCleanup: time.Now()},
		stop:    make(chan struct{}),
	}
	go c.cleanupLoop(cleanupInterval)
	return c
}

// Get retrieves a value. Expired entries are removed and counted as misses.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !exists {
		c.recordMiss()
		return zero, false
	}

	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.recordMiss()
		c.recordEviction(1)
		return zero, false
	}

	c.recordHit()
	return e.data, true
}

// Set stores a value with the default TTL.
func (c *TTL[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *TTL[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[V]{data: value, expiresAt: time.Now().Add(ttl)}
	n := len(c.entries)
	c.mu.Unlock()

	c.setTotal(n)
}

// Delete removes a specific entry.
func (c *TTL[V]) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	n := len(c.entries)
	c.mu.Unlock()

	if existed {
		c.recordEviction(1)
	}
	c.setTotal(n)
}

// Clear removes all entries.
func (c *TTL[V]) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()

	c.recordEviction(evictions)
	c.setTotal(0)
}

// Len returns the number of stored entries, including ones that have
// expired but not yet been cleaned up.
func (c *TTL[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of cache statistics.
func (c *TTL[V]) GetStats() Stats {
	c.statsMu.RLock()
	defer c.statsMu.RUnlock()
	return c.stats
}

// Close stops the cleanup goroutine.
func (c *TTL[V]) Close() error {
	c.closeOnce.Do(func() { close(c.stop) })
	return nil
}

func (c *TTL[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries.
func (c *TTL[V]) cleanup() {
	now := time.Now()
	c.mu.Lock()
	evictions := int64(0)
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			evictions++
		}
	}
	n := len(c.entries)
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = int64(n)
	c.stats.LastCleanup = now
	c.statsMu.Unlock()
	metrics.SetCacheEntries(c.name, n)
}

func (c *TTL[V]) recordHit() {
	c.statsMu.Lock()
	c.stats.Hits++
	c.statsMu.Unlock()
	metrics.RecordCacheHit(c.name)
}

func (c *TTL[V]) recordMiss() {
	c.statsMu.Lock()
	c.stats.Misses++
	c.statsMu.Unlock()
	metrics.RecordCacheMiss(c.name)
}

func (c *TTL[V]) recordEviction(n int64) {
	c.statsMu.Lock()
	c.stats.Evictions += n
	c.statsMu.Unlock()
}

func (c *TTL[V]) setTotal(n int) {
	c.statsMu.Lock()
	c.stats.TotalKeys = int64(n)
	c.statsMu.Unlock()
	metrics.SetCacheEntries(c.name, n)
}

// GenerateKey creates a cache key from a method name and parameters.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
