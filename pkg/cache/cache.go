// Package cache provides a small byte cache for computed enumeration
// results.
//
// Enumerating a large semigroup can take minutes; its summary (size, number
// of rules, idempotent count, word length) is a few hundred bytes. The CLI
// caches summaries keyed by a hash of the problem file and the engine
// options, so repeated runs of the same problem render instantly.
//
// Two implementations are provided: FileCache stores entries as JSON files
// under a directory and is what the CLI uses; NullCache stores nothing and
// serves as the disabled mode. Keyers generate the cache keys; ScopedKeyer
// prefixes another keyer for namespace isolation.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque byte values under string keys with optional
// expiration.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for the artifacts the CLI stores.
type Keyer interface {
	// SummaryKey is the key for an enumeration summary of the problem with
	// the given content hash, computed with the given engine options.
	SummaryKey(problemHash string, opts SummaryKeyOpts) string

	// GraphKey is the key for a rendered Cayley graph of the problem with
	// the given content hash.
	GraphKey(problemHash string, opts GraphKeyOpts) string
}

// SummaryKeyOpts distinguishes summaries computed with different engine
// settings.
type SummaryKeyOpts struct {
	BatchSize int
	Limit     uint64
}

// GraphKeyOpts distinguishes rendered graphs.
type GraphKeyOpts struct {
	Side   string // "right" or "left"
	Format string // "dot" or "svg"
}

// DefaultKeyer hashes the option structs into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SummaryKey generates a key for an enumeration summary.
func (DefaultKeyer) SummaryKey(problemHash string, opts SummaryKeyOpts) string {
	return hashKey("summary:"+problemHash, opts.BatchSize, opts.Limit)
}

// GraphKey generates a key for a rendered Cayley graph.
func (DefaultKeyer) GraphKey(problemHash string, opts GraphKeyOpts) string {
	return hashKey("graph:"+problemHash, opts.Side, opts.Format)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, so
// several projects can share one cache directory.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer whose keys all carry the given prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SummaryKey generates a prefixed summary key.
func (k *ScopedKeyer) SummaryKey(problemHash string, opts SummaryKeyOpts) string {
	return k.prefix + k.inner.SummaryKey(problemHash, opts)
}

// GraphKey generates a prefixed graph key.
func (k *ScopedKeyer) GraphKey(problemHash string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(problemHash, opts)
}

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
