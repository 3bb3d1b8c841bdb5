package unifiedmap

import "iter"

// ForEachKey invokes fn once per live key, in table order.
func (m *Map[K, V]) ForEachKey(fn func(K)) {
	for k := range m.Keys() {
		fn(k)
	}
}

// ForEachValue invokes fn once per live value, in table order.
func (m *Map[K, V]) ForEachValue(fn func(V)) {
	for v := range m.Values() {
		fn(v)
	}
}

// ForEachKeyValue invokes fn once per live key/value pair, in table order.
func (m *Map[K, V]) ForEachKeyValue(fn func(K, V)) {
	for k, v := range m.All() {
		fn(k, v)
	}
}

// ForEachWithIndex invokes fn once per live key/value pair, additionally
// passing the pair's 0-based visitation order.
func (m *Map[K, V]) ForEachWithIndex(fn func(K, V, int)) {
	i := 0
	for k, v := range m.All() {
		fn(k, v, i)
		i++
	}
}

// All returns a read-only range-over-func iterator over every live
// key/value pair. Mutating m during iteration (other than via the result
// of a prior All call having already finished) has undefined results; use
// EntryIterator for iteration with structural removal.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.EntryIterator()
		for it.HasNext() {
			k, v := it.Next()
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns a read-only range-over-func iterator over every live key.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := m.KeyIterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Values returns a read-only range-over-func iterator over every live
// value.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := m.ValueIterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
