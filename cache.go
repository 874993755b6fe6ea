package diskavl

import (
	lru "github.com/hashicorp/golang-lru"
)

// payloadCache is a bounded LRU of node payload bytes keyed by node offset.
// Payloads are write-once, so entries never need invalidation; eviction is
// purely a memory bound.
type payloadCache struct {
	lru *lru.Cache
}

func newPayloadCache(n int) (*payloadCache, error) {
	c, err := lru.New(n)
	if err != nil {
		return nil, err
	}
	return &payloadCache{lru: c}, nil
}

func (c *payloadCache) get(off int64) ([]byte, bool) {
	v, ok := c.lru.Get(off)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// add stores its own copy so callers can keep using their buffer.
func (c *payloadCache) add(off int64, payload []byte) {
	b := make([]byte, len(payload))
	copy(b, payload)
	c.lru.Add(off, b)
}
