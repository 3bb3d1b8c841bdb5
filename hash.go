package unifiedmap

import "hash/maphash"

// HashFunc computes a key's hash code. The default, installed by
// newHasher, wraps hash/maphash.Comparable; WithHasher overrides it.
type HashFunc[K comparable] func(key K) uint64

// newHasher returns the default hasher: a per-map maphash seed feeding
// hash/maphash.Comparable, the stdlib's generic "hash any comparable
// value" primitive and the direct analogue of Java's K.hashCode().
func newHasher[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// index maps a key to an even slot index into the table, applying the
// spec's two-round bit mixer to bound collisions for poor input hashes.
// A null key hashes to 0, exactly like Java's `key == null ? 0 :
// key.hashCode()`.
func (m *Map[K, V]) index(key K) int {
	var h uint64
	if !isNilKey(key) {
		h = m.hash(key)
	}
	h ^= h>>20 ^ h>>12
	h ^= h>>7 ^ h>>4
	capacity := uint64(len(m.table) >> 1)
	return int(h&(capacity-1)) << 1
}
