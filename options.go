package diskavl

// Option configures a Set at Open time.
type Option func(*config)

type config struct {
	cacheSize     int
	bloomExpected int64
}

// WithPayloadCache keeps up to n node payloads in an in-memory LRU keyed by
// offset. Payload bytes are write-once, so cached entries can never go
// stale; the cache trades a bounded amount of memory for fewer reads on hot
// paths near the root.
func WithPayloadCache(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// WithBloomFilter maintains an in-memory bloom filter over the encoded
// elements, sized for roughly expected entries, letting Contains answer
// definitely-absent probes without touching the tree. The filter is not
// persisted; Open rebuilds it with one sequential scan of the node region.
func WithBloomFilter(expected int64) Option {
	return func(c *config) { c.bloomExpected = expected }
}
