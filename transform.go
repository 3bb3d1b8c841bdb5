package unifiedmap

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// valueHashSeed is fixed for the life of the process, so two equal maps
// hash equal across repeated calls within the same run — the same
// guarantee Java's Object.hashCode() contract makes, without claiming
// stability across process restarts.
var valueHashSeed = maphash.MakeSeed()

func hashValue[V any](v V) uint64 {
	return maphash.String(valueHashSeed, fmt.Sprint(v))
}

// CollectValues builds a new map sharing m's keys, with each value replaced
// by fn(key, value). The result's shape (capacity, load factor) mirrors m's,
// since collection shape is a property of the keys, not the values.
func CollectValues[K comparable, V any, R any](m *Map[K, V], fn func(K, V) R) *Map[K, R] {
	result := &Map[K, R]{
		loadFactor: m.loadFactor,
		hash:       m.hash,
		valueEqual: defaultValueEqual[R](),
	}
	result.allocate(len(m.table) >> 1)

	for i := 0; i < len(m.table); i += 2 {
		cur := m.table[i]
		if cur == any(chainedKey) {
			chain := m.table[i+1].([]any)
			newChain := make([]any, len(chain))
			live := 0
			for j := 0; j < len(chain); j += 2 {
				if chain[j] == nil {
					break
				}
				key := nonSentinel[K](chain[j])
				newChain[j] = chain[j]
				newChain[j+1] = fn(key, chain[j+1].(V))
				live++
			}
			result.table[i] = chainedKey
			result.table[i+1] = newChain
			result.occupied += live
		} else if cur != nil {
			key := nonSentinel[K](cur)
			result.table[i] = cur
			result.table[i+1] = fn(key, m.table[i+1].(V))
			result.occupied++
		}
	}
	return result
}

// Equal reports whether m and other contain the same set of keys, each
// mapped to equal values under m's configured value-equality function.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.occupied != other.occupied {
		return false
	}
	it := m.EntryIterator()
	for it.HasNext() {
		k, v := it.Next()
		ov, ok := other.Get(k)
		if !ok || !m.valueEqual(v, ov) {
			return false
		}
	}
	return true
}

// EqualToMap reports whether m contains exactly the entries of other,
// comparing values with m's configured value-equality function.
func (m *Map[K, V]) EqualToMap(other map[K]V) bool {
	if m.occupied != len(other) {
		return false
	}
	for k, v := range other {
		mv, ok := m.Get(k)
		if !ok || !m.valueEqual(mv, v) {
			return false
		}
	}
	return true
}

// Hash returns an order-independent content hash: the sum of each entry's
// key-hash XOR value-hash, the same combining rule Java's
// AbstractMap.hashCode() uses. Two maps with Equal content always return
// the same Hash within a single process run.
func (m *Map[K, V]) Hash() uint64 {
	var h uint64
	it := m.EntryIterator()
	for it.HasNext() {
		k, v := it.Next()
		var kh uint64
		if !isNilKey(k) {
			kh = maphash.Comparable(valueHashSeed, k)
		}
		h += kh ^ hashValue(v)
	}
	return h
}

// String renders m as "{k1=v1, k2=v2, ...}" in table order. Intended for
// debugging; the order is not part of any contract.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	it := m.EntryIterator()
	for it.HasNext() {
		k, v := it.Next()
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v=%v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}
