package unifiedmap

import "reflect"

const (
	// DefaultLoadFactor is the maximum occupancy ratio before a rehash is
	// triggered.
	DefaultLoadFactor = 0.75
	// DefaultInitialCapacity is the capacity used by New when no capacity
	// hint is given.
	DefaultInitialCapacity = 8
)

// Map is a finite mapping from keys of type K to values of type V. Keys are
// unique under Map's equivalence relation (K's hash plus ==). Both a null
// key (for interface-typed K) and a null/zero value are admissible.
//
// The zero Map is not ready for use; construct one with New or one of its
// siblings.
type Map[K comparable, V any] struct {
	table      []any
	occupied   int
	loadFactor float64
	maxSize    int
	hash       HashFunc[K]
	valueEqual func(a, b V) bool
}

func resolveConfig[K comparable, V any](opts []Option[K, V]) Config[K, V] {
	var cfg Config[K, V]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasher == nil {
		cfg.hasher = newHasher[K]()
	}
	if cfg.valueEqual == nil {
		cfg.valueEqual = defaultValueEqual[V]()
	}
	return cfg
}

// defaultValueEqual is the fallback value-equality used when no
// WithValueEqual option is given: reflect.DeepEqual, since V is
// unconstrained and may not itself satisfy comparable.
func defaultValueEqual[V any]() func(a, b V) bool {
	return func(a, b V) bool { return reflect.DeepEqual(a, b) }
}

// New creates an empty Map with the default initial capacity (8) and the
// default load factor (0.75).
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	cfg := resolveConfig[K, V](opts)
	m := &Map[K, V]{
		loadFactor: DefaultLoadFactor,
		hash:       cfg.hasher,
		valueEqual: cfg.valueEqual,
	}
	m.init(DefaultInitialCapacity)
	return m
}

// NewWithCapacity creates an empty Map sized to hold capacityHint entries
// at the default load factor without rehashing.
func NewWithCapacity[K comparable, V any](capacityHint int, opts ...Option[K, V]) *Map[K, V] {
	return NewWithCapacityAndLoad[K, V](capacityHint, DefaultLoadFactor, opts...)
}

// NewWithCapacityAndLoad creates an empty Map sized for capacityHint entries
// at the given load factor. For a load factor below 1 those entries fit
// without rehashing; at 1 or above, the one-free-slot cap on maxSize can
// trigger a rehash before capacityHint entries are stored. It panics with
// *InvalidArgumentError if capacityHint is negative or loadFactor is not
// positive.
func NewWithCapacityAndLoad[K comparable, V any](capacityHint int, loadFactor float64, opts ...Option[K, V]) *Map[K, V] {
	if capacityHint < 0 {
		panic(invalidArgument("initial capacity cannot be less than 0, got %d", capacityHint))
	}
	if loadFactor <= 0 {
		panic(invalidArgument("load factor must be positive, got %v", loadFactor))
	}
	cfg := resolveConfig[K, V](opts)
	m := &Map[K, V]{
		loadFactor: loadFactor,
		hash:       cfg.hasher,
		valueEqual: cfg.valueEqual,
	}
	m.init(fastCeil(float64(capacityHint) / loadFactor))
	return m
}

// Size returns the number of live entries.
func (m *Map[K, V]) Size() int {
	return m.occupied
}

// IsEmpty reports whether Size is 0.
func (m *Map[K, V]) IsEmpty() bool {
	return m.occupied == 0
}

// Clear removes every entry without shrinking capacity.
func (m *Map[K, V]) Clear() {
	if m.occupied == 0 {
		return
	}
	m.occupied = 0
	for i := range m.table {
		m.table[i] = nil
	}
}

// Get returns the value for key and whether key is present, distinguishing
// "absent" from "present with a zero/null value".
func (m *Map[K, V]) Get(key K) (V, bool) {
	index := m.index(key)
	cur := m.table[index]
	if cur == nil {
		var zero V
		return zero, false
	}
	val := m.table[index+1]
	if cur == any(chainedKey) {
		return getFromChain[K, V](val.([]any), key)
	}
	if nonNullTableObjectEquals(cur, key) {
		return val.(V), true
	}
	var zero V
	return zero, false
}

func getFromChain[K comparable, V any](chain []any, key K) (V, bool) {
	for i := 0; i < len(chain); i += 2 {
		k := chain[i]
		if k == nil {
			var zero V
			return zero, false
		}
		if nonNullTableObjectEquals(k, key) {
			return chain[i+1].(V), true
		}
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key is present, regardless of its value.
func (m *Map[K, V]) ContainsKey(key K) bool {
	index := m.index(key)
	cur := m.table[index]
	if cur == nil {
		return false
	}
	if cur != any(chainedKey) {
		return nonNullTableObjectEquals(cur, key)
	}
	return chainContainsKey[K](m.table[index+1].([]any), key)
}

func chainContainsKey[K comparable](chain []any, key K) bool {
	for i := 0; i < len(chain); i += 2 {
		k := chain[i]
		if k == nil {
			return false
		}
		if nonNullTableObjectEquals(k, key) {
			return true
		}
	}
	return false
}

// ContainsValue is a linear scan for value among every live value,
// comparing with the configured value-equality function (reflect.DeepEqual
// by default, overridable with WithValueEqual).
func (m *Map[K, V]) ContainsValue(value V) bool {
	for i := 0; i < len(m.table); i += 2 {
		cur := m.table[i]
		if cur == any(chainedKey) {
			if m.chainContainsValue(m.table[i+1].([]any), value) {
				return true
			}
		} else if cur != nil {
			if m.valueEqual(value, m.table[i+1].(V)) {
				return true
			}
		}
	}
	return false
}

func (m *Map[K, V]) chainContainsValue(chain []any, value V) bool {
	for i := 0; i < len(chain); i += 2 {
		if chain[i] == nil {
			return false
		}
		if m.valueEqual(value, chain[i+1].(V)) {
			return true
		}
	}
	return false
}

func fastCeil(v float64) int {
	possible := int(v)
	if v-float64(possible) > 0 {
		possible++
	}
	return possible
}
