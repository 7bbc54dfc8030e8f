package binarycodec

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"

	"github.com/nemtech/nem2-e2e-tests/internal/core/tx"
)

// DefaultCacheSize is used when a non-positive size is configured.
const DefaultCacheSize = 1024

// CachingDeserializer memoizes Deserialize by payload digest.
// Cached models are shared between callers and must be treated as read-only.
type CachingDeserializer struct {
	codec *BinarySerialization
	cache *lru.Cache[[32]byte, tx.Transaction]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// NewCachingDeserializer wraps codec with an LRU of the given size.
func NewCachingDeserializer(codec *BinarySerialization, size int) (*CachingDeserializer, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[[32]byte, tx.Transaction](size)
	if err != nil {
		return nil, err
	}
	return &CachingDeserializer{codec: codec, cache: cache}, nil
}

// Deserialize returns the cached model for payload, decoding it on a miss.
// Failed decodes are not cached.
func (c *CachingDeserializer) Deserialize(payload []byte) (tx.Transaction, error) {
	key := sha3.Sum256(payload)
	if t, ok := c.cache.Get(key); ok {
		c.hits.Add(1)
		return t, nil
	}
	c.misses.Add(1)

	t, err := c.codec.Deserialize(payload)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, t)
	return t, nil
}

// Stats returns a snapshot of the hit and miss counters.
func (c *CachingDeserializer) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.cache.Len(),
	}
}

// Purge drops every cached model.
func (c *CachingDeserializer) Purge() {
	c.cache.Purge()
}
