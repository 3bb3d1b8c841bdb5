package unifiedmap

// sentinel is a process-unique opaque marker used as an in-band type tag in
// the table's key slots. The two instances below are distinguishable only
// by pointer identity, never by value equality — their Equal/Hash methods
// exist solely to fail loudly if that identity discipline is ever violated.
type sentinel struct {
	name string
}

func (s *sentinel) String() string { return s.name }

// Equal always panics: a sentinel must never be compared against a real
// key. See CorruptionError.
func (s *sentinel) Equal(any) bool {
	panic(corrupted("equality"))
}

// Hash always panics: a sentinel must never be hashed. See CorruptionError.
func (s *sentinel) Hash() uint64 {
	panic(corrupted("hash"))
}

var (
	// nullKey stands in for a null key stored in a key slot.
	nullKey = &sentinel{name: "unifiedmap.nullKey"}
	// chainedKey marks that the companion (odd) slot holds an overflow
	// chain, not a direct value.
	chainedKey = &sentinel{name: "unifiedmap.chainedKey"}
)

// isNilKey reports whether key is the Go analogue of a Java null key: an
// interface-typed K holding the literal nil. For non-nilable K (int,
// string, structs, ...) this is always false, since such a K has no nil
// value to pass — the null-key feature is simply inapplicable there, not
// broken.
func isNilKey[K comparable](key K) bool {
	var a any = key
	return a == nil
}

// toSentinelIfNil returns nullKey in place of a nil key, otherwise boxes
// the key as-is.
func toSentinelIfNil[K comparable](key K) any {
	if isNilKey(key) {
		return nullKey
	}
	return key
}

// nonSentinel reverses toSentinelIfNil when reading a key back out of the
// table.
func nonSentinel[K comparable](stored any) K {
	if stored == any(nullKey) {
		var zero K
		return zero
	}
	return stored.(K)
}

// nonNullTableObjectEquals compares a non-sentinel table key cell against a
// query key, handling the nullKey encoding and giving identity comparison
// precedence over K's own equality.
func nonNullTableObjectEquals[K comparable](stored any, queryKey K) bool {
	if stored == any(queryKey) {
		return true
	}
	if stored == any(nullKey) {
		return isNilKey(queryKey)
	}
	k, ok := stored.(K)
	return ok && k == queryKey
}
