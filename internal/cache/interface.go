// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package cache

import (
	"fmt"
	"time"
)

// Store is a typed cache.
type Store[V any] interface {
	// Get returns the value and true if found and not expired.
	Get(key string) (V, bool)

	// Set stores a value with the default TTL.
	Set(key string, value V)

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value V, ttl time.Duration)

	// Delete removes a value.
	Delete(key string)

	// Len returns the number of live entries.
	Len() int

	// GetStats returns cache statistics.
	GetStats() Stats

	// Close releases background resources. The store must not be used
	// afterwards.
	Close() error
}

// Stats tracks cache performance.
type Stats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	TotalKeys   int64     `json:"total_keys"`
	LastCleanup time.Time `json:"last_cleanup"`
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendBadger Backend = "badger"
	BackendNone   Backend = "none"
)

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendMemory, BackendBadger, BackendNone:
		return b, nil
	default:
		return "", fmt.Errorf("unknown cache backend %q (valid: memory, badger, none)", s)
	}
}

// Noop is a Store that never holds values.
type Noop[V any] struct{}

// NewNoop returns a disabled store.
func NewNoop[V any]() *Noop[V] { return &Noop[V]{} }

func (*Noop[V]) Get(string) (V, bool) {
	var zero V
	return zero, false
}
func (*Noop[V]) Set(string, V)                       {}
func (*Noop[V]) SetWithTTL(string, V, time.Duration) {}
func (*Noop[V]) Delete(string)                       {}
func (*Noop[V]) Len() int                            { return 0 }
func (*Noop[V]) GetStats() Stats                     { return Stats{} }
func (*Noop[V]) Close() error                        { return nil }
