// Movie Recommendation APP - Content-Based and Criteria-Driven Movie Recommendations
// Copyright 2026 EsraKorkmazz
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/EsraKorkmazz/Movie-Recommendation-APP

package cache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/EsraKorkmazz/Movie-Recommendation-APP/internal/metrics"
)

// BadgerOptions configures OpenBadger.
type BadgerOptions struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in RAM.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool
}

// OpenBadger opens (or creates) a BadgerDB for cache use.
func OpenBadger(o BadgerOptions) (*badger.DB, error) {
	opts := badger.DefaultOptions(o.Path)
	if o.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = o.SyncWrites
	// Cached values are small JSON documents.
	opts.ValueLogFileSize = 64 << 20
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}
	return db, nil
}

// Badger is a persistent Store backed by BadgerDB. Values are JSON encoded
// and keys are namespaced by prefix so several stores can share one DB.
// Expiry is enforced by BadgerDB entry TTLs.
type Badger[V any] struct {
	name   string
	db     *badger.DB
	prefix []byte
	ttl    time.Duration
	logger zerolog.Logger

	statsMu sync.RWMutex
	stats   Stats
}

// NewBadger creates a store over db. The caller owns db and closes it.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadger[V any](db *badger.DB, name string, ttl time.Duration, logger zerolog.Logger) *Badger[V] {
	return &Badger[V]{
		name:   name,
		db:     db,
		prefix: []byte(name + ":"),
		ttl:    ttl,
		logger: logger.With().Str("component", "cache").Str("cache", name).Logger(),
	}
}

func (b *Badger[V]) key(k string) []byte {
	out := make([]byte, 0, len(b.prefix)+len(k))
	out = append(out, b.prefix...)
	return append(out, k...)
}

// Get retrieves a value. Decode and read errors are logged and reported as
// misses.
func (b *Badger[V]) Get(key string) (V, bool) {
	var value V
	found := false

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &value)
		})
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		found = false
	}

	if !found {
		var zero V
		b.recordMiss()
		return zero, false
	}
	b.recordHit()
	return value, true
}

// Set stores a value with the default TTL.
func (b *Badger[V]) Set(key string, value V) {
	b.SetWithTTL(key, value, b.ttl)
}

// SetWithTTL stores a value with a custom TTL. Write errors are logged.
func (b *Badger[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		b.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(b.key(key), data)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Delete removes a value.
func (b *Badger[V]) Delete(key string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(b.key(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("key", key).Msg("cache delete failed")
		return
	}
	b.statsMu.Lock()
	b.stats.Evictions++
	b.statsMu.Unlock()
}

// Len counts live keys under the store prefix.
func (b *Badger[V]) Len() int {
	n := 0
	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = b.prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n
}

// GetStats returns a snapshot of statistics with a fresh key count.
func (b *Badger[V]) GetStats() Stats {
	n := b.Len()
	metrics.SetCacheEntries(b.name, n)

	b.statsMu.Lock()
	defer b.statsMu.Unlock()
	b.stats.TotalKeys = int64(n)
	b.stats.LastCleanup = time.Now()
	return b.stats
}

// Close is a no-op; the DB is owned by the caller.
func (b *Badger[V]) Close() error { return nil }

func (b *Badger[V]) recordHit() {
	b.statsMu.Lock()
	b.stats.Hits++
	b.statsMu.Unlock()
	metrics.RecordCacheHit(b.name)
}

func (b *Badger[V]) recordMiss() {
	b.statsMu.Lock()
	b.stats.Misses++
	b.statsMu.Unlock()
	metrics.RecordCacheMiss(b.name)
}

// RunGC rewrites value log files until BadgerDB reports nothing left to
// reclaim. It returns the number of files rewritten. In-memory databases
// have no value log and return immediately.
func RunGC(db *badger.DB, discardRatio float64) (int, error) {
	rewritten := 0
	for {
		err := db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return rewritten, nil
		}
		if err != nil {
			return rewritten, fmt.Errorf("run GC: %w", err)
		}
		rewritten++
	}
}
