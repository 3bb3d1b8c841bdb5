package unifiedmap

import "weak"

// Entry is a single live key/value pair exposed by EntrySet. It holds a
// weak back-reference to its owning map so that SetValue can route through
// the map's own Put without the entry pinning the whole map in memory.
type Entry[K comparable, V any] struct {
	key   K
	value V
	owner weak.Pointer[Map[K, V]]
}

// Key returns the entry's key.
func (e Entry[K, V]) Key() K { return e.key }

// Value returns the entry's value as it stood when the entry was produced,
// or the value most recently written through SetValue.
func (e Entry[K, V]) Value() V { return e.value }

// SetValue writes through to the owning map, returning the previous value.
// If the owning map has since been garbage collected, SetValue is a no-op
// and reports false.
func (e *Entry[K, V]) SetValue(v V) (V, bool) {
	m := e.owner.Value()
	if m == nil {
		var zero V
		return zero, false
	}
	old, had := m.Put(e.key, v)
	e.value = v
	return old, had
}

// KeySet is a live, read/remove-only view over a map's keys.
type KeySet[K comparable, V any] struct{ m *Map[K, V] }

// KeySet returns a view of m's keys. The view is backed by m: removals
// through the view remove from m, and changes to m are visible through it.
func (m *Map[K, V]) KeySet() *KeySet[K, V] { return &KeySet[K, V]{m: m} }

func (s *KeySet[K, V]) Size() int              { return s.m.occupied }
func (s *KeySet[K, V]) Contains(key K) bool    { return s.m.ContainsKey(key) }
func (s *KeySet[K, V]) Iterator() *KeyIterator[K, V] { return s.m.KeyIterator() }

// Remove deletes key from the backing map, returning whether it was
// present.
func (s *KeySet[K, V]) Remove(key K) bool {
	_, had := s.m.Remove(key)
	return had
}

// Add is unsupported: KeySet cannot admit a key without a value.
func (s *KeySet[K, V]) Add(K) error { return unsupported("Add") }

// ToSlice snapshots the view's current keys into an independent slice.
func (s *KeySet[K, V]) ToSlice() []K {
	out := make([]K, 0, s.m.occupied)
	it := s.m.KeyIterator()
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// RetainAll removes every key from the backing map that is not present in
// keep, using the teacher's build-then-swap strategy: a replacement table is
// built containing only the retained entries, then swapped in, rather than
// mutating the live table while walking it. It reports whether the size
// strictly decreased.
func (s *KeySet[K, V]) RetainAll(keep map[K]struct{}) bool {
	return s.m.retainKeys(keep)
}

// ValuesCollection is a live, read/remove-only view over a map's values.
// Unlike KeySet, it is a multiset: Remove deletes only the first matching
// value it encounters.
type ValuesCollection[K comparable, V any] struct{ m *Map[K, V] }

// ValuesView returns a view of m's values.
func (m *Map[K, V]) ValuesView() *ValuesCollection[K, V] { return &ValuesCollection[K, V]{m: m} }

func (v *ValuesCollection[K, V]) Size() int { return v.m.occupied }

func (v *ValuesCollection[K, V]) Contains(value V) bool { return v.m.ContainsValue(value) }

func (v *ValuesCollection[K, V]) Iterator() *ValueIterator[K, V] { return v.m.ValueIterator() }

// Remove deletes the first entry found whose value matches, reporting
// whether any entry was removed.
func (v *ValuesCollection[K, V]) Remove(value V) bool {
	it := v.m.EntryIterator()
	for it.HasNext() {
		_, val := it.Next()
		if v.m.valueEqual(val, value) {
			it.Remove()
			return true
		}
	}
	return false
}

// Add is unsupported: a bare value cannot be associated with a key.
func (v *ValuesCollection[K, V]) Add(V) error { return unsupported("Add") }

// ToSlice snapshots the view's current values into an independent slice.
func (v *ValuesCollection[K, V]) ToSlice() []V {
	out := make([]V, 0, v.m.occupied)
	it := v.m.ValueIterator()
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// EntrySet is a live, read/remove-only view over a map's key/value pairs.
type EntrySet[K comparable, V any] struct{ m *Map[K, V] }

// EntrySet returns a view of m's entries.
func (m *Map[K, V]) EntrySet() *EntrySet[K, V] { return &EntrySet[K, V]{m: m} }

func (s *EntrySet[K, V]) Size() int { return s.m.occupied }

// Contains reports whether key is present with a value equal to value.
func (s *EntrySet[K, V]) Contains(key K, value V) bool {
	existing, ok := s.m.Get(key)
	return ok && s.m.valueEqual(existing, value)
}

// Iterator returns an iterator over Entry values. Each Entry snapshots its
// value at the time it was produced; SetValue writes back through to the
// map.
func (s *EntrySet[K, V]) Iterator() *EntryViewIterator[K, V] {
	return &EntryViewIterator[K, V]{m: s.m, it: s.m.EntryIterator()}
}

// Remove deletes key if present with a value equal to value, mirroring the
// Java EntrySet contract that a remove must match both key and value.
func (s *EntrySet[K, V]) Remove(key K, value V) bool {
	existing, ok := s.m.Get(key)
	if !ok || !s.m.valueEqual(existing, value) {
		return false
	}
	_, had := s.m.Remove(key)
	return had
}

// Add is unsupported: entries are produced by the map, not constructed
// externally.
func (s *EntrySet[K, V]) Add(Entry[K, V]) error { return unsupported("Add") }

// ToSlice snapshots the view's current entries into an independent slice.
func (s *EntrySet[K, V]) ToSlice() []Entry[K, V] {
	out := make([]Entry[K, V], 0, s.m.occupied)
	it := s.Iterator()
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// EntryViewIterator adapts EntryIterator's (K, V) pairs into Entry values
// carrying a weak back-reference, and forwards Remove to the underlying
// cursor.
type EntryViewIterator[K comparable, V any] struct {
	m  *Map[K, V]
	it *EntryIterator[K, V]
}

func (it *EntryViewIterator[K, V]) HasNext() bool { return it.it.HasNext() }

func (it *EntryViewIterator[K, V]) Next() Entry[K, V] {
	k, v := it.it.Next()
	return Entry[K, V]{key: k, value: v, owner: weak.Make(it.m)}
}

func (it *EntryViewIterator[K, V]) Remove() { it.it.Remove() }

// retainKeys rebuilds the map containing only keys present in keep,
// reporting whether the size strictly decreased. It is grounded on the same
// "build a fresh table, then swap it in" approach the teacher's own
// retainAll variants use, rather than mutating the live table mid-scan.
func (m *Map[K, V]) retainKeys(keep map[K]struct{}) bool {
	before := m.occupied
	replacement := &Map[K, V]{
		loadFactor: m.loadFactor,
		hash:       m.hash,
		valueEqual: m.valueEqual,
	}
	replacement.init(fastCeil(float64(len(keep)) / m.loadFactor))

	it := m.EntryIterator()
	for it.HasNext() {
		k, v := it.Next()
		if _, ok := keep[k]; ok {
			replacement.Put(k, v)
		}
	}
	m.table = replacement.table
	m.occupied = replacement.occupied
	m.maxSize = replacement.maxSize
	return before != m.occupied
}
