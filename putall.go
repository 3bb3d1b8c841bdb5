package unifiedmap

// Pair is a key/value literal used to seed a map at construction time.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// KV constructs a Pair; a small convenience for call sites using
// NewFromPairs/WithKeysValues.
func KV[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// NewFromPairs builds a map preloaded with pairs. Later pairs win ties on
// duplicate keys.
func NewFromPairs[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := NewWithCapacity[K, V](len(pairs))
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return m
}

// NewFromMap builds a map preloaded with every entry of src.
func NewFromMap[K comparable, V any](src map[K]V) *Map[K, V] {
	m := NewWithCapacity[K, V](len(src))
	for k, v := range src {
		m.Put(k, v)
	}
	return m
}

// WithKeysValues is a fluent builder: it Puts every pair into m and returns
// m, so construction can chain, e.g. New[string, int]().WithKeysValues(...).
func (m *Map[K, V]) WithKeysValues(pairs ...Pair[K, V]) *Map[K, V] {
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return m
}

// PutAll copies every entry of src into m, overwriting any existing values
// for shared keys.
func (m *Map[K, V]) PutAll(src map[K]V) {
	for k, v := range src {
		m.Put(k, v)
	}
}

// PutAllFrom copies every entry of other into m by walking other's table
// directly, bypassing its public iterator. It is faster than a generic
// PutAll but only usable when other is a *Map[K, V] of the same package.
func (m *Map[K, V]) PutAllFrom(other *Map[K, V]) {
	if other.occupied == 0 {
		return
	}
	for i := 0; i < len(other.table); i += 2 {
		cur := other.table[i]
		if cur == any(chainedKey) {
			chain := other.table[i+1].([]any)
			for j := 0; j < len(chain); j += 2 {
				if chain[j] == nil {
					break
				}
				m.Put(nonSentinel[K](chain[j]), chain[j+1].(V))
			}
		} else if cur != nil {
			m.Put(nonSentinel[K](cur), other.table[i+1].(V))
		}
	}
}

// ExternalMap is the minimal surface PutAllExternal needs from a foreign
// map-like source that isn't a map[K]V or a *Map[K, V].
type ExternalMap[K comparable, V any] interface {
	Len() int
	Entries() []Pair[K, V]
}

// PutAllExternal copies every entry reported by src into m. It panics with
// *EntrySetNullContractError if src reports a non-zero Len but a nil
// Entries slice, since that combination signals a broken ExternalMap
// implementation rather than an empty one.
func (m *Map[K, V]) PutAllExternal(src ExternalMap[K, V]) {
	n := src.Len()
	entries := src.Entries()
	if n > 0 && entries == nil {
		panic(entrySetNullContract())
	}
	for _, p := range entries {
		m.Put(p.Key, p.Value)
	}
}
